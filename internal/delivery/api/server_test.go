package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/config"
	apimiddleware "recipebook/internal/delivery/api/middleware"
	"recipebook/internal/delivery/api/response"
	"recipebook/internal/delivery/api/router"
	"recipebook/internal/delivery/api/router/handler"
	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/entity"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/errors"
	"recipebook/internal/infra/auth"
	"recipebook/internal/infra/metrics"
	mockRepo "recipebook/internal/mocks/repository"
	mockSvc "recipebook/internal/mocks/service"
	mockUC "recipebook/internal/mocks/usecase"
	"recipebook/internal/usecase"
	"recipebook/internal/usecase/impl"
	"recipebook/internal/validation"
)

const testToken = "valid-token"

// apiFixtures holds the routed echo instance and the mocks behind it.
type apiFixtures struct {
	echo      *echo.Echo
	userUC    *mockUC.MockUserUsecase
	profileUC *mockUC.MockProfileUsecase
	recipeUC  *mockUC.MockRecipeUsecase
	tokens    *mockSvc.MockTokenService
	callerID  primitive.ObjectID
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockUC.NewMockUserUsecase(t)
	profileUC := mockUC.NewMockProfileUsecase(t)
	recipeUC := mockUC.NewMockRecipeUsecase(t)
	tokens := mockSvc.NewMockTokenService(t)
	callerID := primitive.NewObjectID()

	tokens.EXPECT().ValidateToken(testToken).Return(callerID, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(primitive.NilObjectID, domainerrors.ErrInvalidToken.WrapMessage("bad token")).Maybe()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	m := metrics.New()
	e := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profileUC, Logger: logger}),
			RecipeHandler:  handler.NewRecipeHandler(handler.RecipeHandlerParams{RecipeUC: recipeUC, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
			Metrics:        m,
			Config:         cfg,
		},
	})

	return apiFixtures{
		echo:      e,
		userUC:    userUC,
		profileUC: profileUC,
		recipeUC:  recipeUC,
		tokens:    tokens,
		callerID:  callerID,
	}
}

func (fx apiFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func authed() map[string]string {
	return map[string]string{"x-auth-token": testToken}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Register(t *testing.T) {
	fx := createTestAPI(t)

	fx.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{Token: "tok", User: &entity.User{}}, nil)

	rec := fx.do(http.MethodPost, "/api/users", `{"name":"Ada","email":"ada@example.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())
}

func TestAPI_Register_ValidationErrors(t *testing.T) {
	fx := createTestAPI(t)

	fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.NewValidationError(
		domainerrors.FieldError{Param: "email", Msg: "Please include a valid email"},
		domainerrors.FieldError{Param: "password", Msg: "Please enter a password with 6 or more characters"},
	))

	rec := fx.do(http.MethodPost, "/api/users", `{"name":"Ada","email":"x","password":"1"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, []response.ErrorItem{
		{Param: "email", Msg: "Please include a valid email"},
		{Param: "password", Msg: "Please enter a password with 6 or more characters"},
	}, body.Errors)
}

func TestAPI_Register_OverlongPasswordIsRejected(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher, err := auth.NewBcryptHasherWithCost(4)
	require.NoError(t, err)

	// Real user service so the request goes through the actual validation and hashing path.
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     mockRepo.NewMockUserRepository(t),
		Hasher:       hasher,
		TokenService: mockSvc.NewMockTokenService(t),
		Avatars:      mockSvc.NewMockAvatarProvider(t),
		Validator:    validation.New(),
		Publisher:    mockSvc.NewMockEventPublisher(t),
		Logger:       logger,
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	m := metrics.New()
	e := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUC.NewMockProfileUsecase(t), Logger: logger}),
			RecipeHandler:  handler.NewRecipeHandler(handler.RecipeHandlerParams{RecipeUC: mockUC.NewMockRecipeUsecase(t), Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
			Metrics:        m,
			Config:         cfg,
		},
	})
	api := apiFixtures{echo: e}

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"register", "/api/users", `{"name":"A","email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`},
		{"register multibyte", "/api/users", `{"name":"A","email":"a@x.com","password":"` + strings.Repeat("é", 40) + `"}`},
		{"login", "/api/auth", `{"email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, tt.target, tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Code)
			assert.Equal(t, []response.ErrorItem{{Param: "password", Msg: "Password must be at most 72 bytes"}}, body.Errors)
		})
	}
}

func TestAPI_Register_MalformedJSON(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/users", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestAPI_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unknown user", domainerrors.ErrUserNotFound, http.StatusBadRequest, "USER_NOT_FOUND", "User not found"},
		{"wrong password", domainerrors.ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials"},
		{"database failure", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := fx.do(http.MethodPost, "/api/auth", `{"email":"ada@example.com","password":"secret1"}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantMsg, body.Errors[0].Msg)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestAPI_AuthGuard(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodGet, "/api/auth", "", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "UNAUTHORIZED", body.Code)
		assert.Equal(t, "No token, authorization denied", body.Errors[0].Msg)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodGet, "/api/auth", "", map[string]string{"x-auth-token": "forged"})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is not valid", decodeError(t, rec).Errors[0].Msg)
	})

	t.Run("bearer header accepted", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.userUC.EXPECT().GetCurrentUser(mock.Anything, fx.callerID).
			Return(&entity.User{ID: fx.callerID, Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}, nil)

		rec := fx.do(http.MethodGet, "/api/auth", "", map[string]string{"Authorization": "Bearer " + testToken})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Ada"`)
		assert.NotContains(t, rec.Body.String(), "hash")
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestAPI_Profile(t *testing.T) {
	t.Run("get mine not found", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().GetMine(mock.Anything, fx.callerID).Return(nil, domainerrors.ErrProfileNotFound)

		rec := fx.do(http.MethodGet, "/api/profile/me", "", authed())

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "There is no profile for this user", decodeError(t, rec).Errors[0].Msg)
	})

	t.Run("upsert", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().
			UpsertMine(mock.Anything, fx.callerID, mock.MatchedBy(func(in *usecase.UpsertProfileInput) bool {
				return in.Status == "Cooking" && in.Website == nil
			})).
			Return(&entity.Profile{
				ID:     primitive.NewObjectID(),
				User:   entity.UserSummary{ID: fx.callerID, Name: "Ada", Avatar: "a.png"},
				Status: "Cooking",
			}, nil)

		rec := fx.do(http.MethodPost, "/api/profile", `{"status":"Cooking"}`, authed())

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Ada", body.User.Name)
		assert.Equal(t, fx.callerID.Hex(), body.User.ID)
		assert.NotNil(t, body.Recipes)
	})

	t.Run("list is public", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().ListAll(mock.Anything).Return([]*entity.Profile{}, nil)

		rec := fx.do(http.MethodGet, "/api/profile", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("by user", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().GetByUserID(mock.Anything, "abc").Return(nil, domainerrors.ErrProfileNotFound)

		rec := fx.do(http.MethodGet, "/api/profile/user/abc", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().DeleteMine(mock.Anything, fx.callerID).Return(nil)

		rec := fx.do(http.MethodDelete, "/api/profile", "", authed())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"User deleted"}`, rec.Body.String())
	})

	t.Run("add recipe entry", func(t *testing.T) {
		fx := createTestAPI(t)
		entryID := primitive.NewObjectID()
		fx.profileUC.EXPECT().
			AddRecipeEntry(mock.Anything, fx.callerID, mock.MatchedBy(func(in *usecase.RecipeEntryInput) bool {
				return in.Title == "Soup" && in.IngredientCount != nil && *in.IngredientCount == 2
			})).
			Return(&entity.Profile{Recipes: []entity.RecipeEntry{{ID: entryID, Title: "Soup", PublishDate: time.Now()}}}, nil)

		rec := fx.do(http.MethodPut, "/api/profile/recipes",
			`{"title":"Soup","ingredientName":"leek","ingredientCount":2,"ingredientUnit":"pcs","instruction":"Boil"}`, authed())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), entryID.Hex())
	})

	t.Run("remove recipe entry", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.profileUC.EXPECT().RemoveRecipeEntry(mock.Anything, fx.callerID, "e1").Return(nil, domainerrors.ErrRecipeEntryNotFound)

		rec := fx.do(http.MethodDelete, "/api/profile/recipes/e1", "", authed())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_Recipes(t *testing.T) {
	recipeID := primitive.NewObjectID()

	t.Run("create", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().Create(mock.Anything, fx.callerID, &usecase.RecipeInput{Text: "Ragu"}).
			Return(&entity.Recipe{ID: recipeID, User: fx.callerID, Text: "Ragu", Likes: []entity.Like{}, Comments: []entity.Comment{}}, nil)

		rec := fx.do(http.MethodPost, "/api/recipes", `{"text":"Ragu"}`, authed())

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.RecipeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, recipeID.Hex(), body.ID)
		assert.Empty(t, body.Likes)
	})

	t.Run("delete forbidden", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().Delete(mock.Anything, fx.callerID, recipeID.Hex()).Return(domainerrors.ErrForbidden)

		rec := fx.do(http.MethodDelete, "/api/recipes/"+recipeID.Hex(), "", authed())

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "User not authorized", decodeError(t, rec).Errors[0].Msg)
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().Delete(mock.Anything, fx.callerID, recipeID.Hex()).Return(nil)

		rec := fx.do(http.MethodDelete, "/api/recipes/"+recipeID.Hex(), "", authed())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"Recipe removed"}`, rec.Body.String())
	})

	t.Run("like twice", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().Like(mock.Anything, fx.callerID, recipeID.Hex()).Return(nil, domainerrors.ErrRecipeAlreadyLiked)

		rec := fx.do(http.MethodPut, "/api/recipes/like/"+recipeID.Hex(), "", authed())

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Recipe already liked", decodeError(t, rec).Errors[0].Msg)
	})

	t.Run("unlike", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().Unlike(mock.Anything, fx.callerID, recipeID.Hex()).Return([]entity.Like{}, nil)

		rec := fx.do(http.MethodPut, "/api/recipes/unlike/"+recipeID.Hex(), "", authed())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("comment", func(t *testing.T) {
		fx := createTestAPI(t)
		commentID := primitive.NewObjectID()
		fx.recipeUC.EXPECT().AddComment(mock.Anything, fx.callerID, recipeID.Hex(), &usecase.CommentInput{Text: "Yum"}).
			Return([]entity.Comment{{ID: commentID, User: fx.callerID, Text: "Yum"}}, nil)

		rec := fx.do(http.MethodPost, "/api/recipes/comment/"+recipeID.Hex(), `{"text":"Yum"}`, authed())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), commentID.Hex())
	})

	t.Run("remove comment", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().RemoveComment(mock.Anything, fx.callerID, recipeID.Hex(), "c1").Return(nil, domainerrors.ErrCommentNotFound)

		rec := fx.do(http.MethodDelete, "/api/recipes/comment/"+recipeID.Hex()+"/c1", "", authed())

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Comment does not exist", decodeError(t, rec).Errors[0].Msg)
	})

	t.Run("share code", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.recipeUC.EXPECT().ShareCode(mock.Anything, recipeID.Hex()).
			Return(&usecase.ShareCodeOutput{PNG: []byte("png"), URL: "http://localhost:3000/recipes/" + recipeID.Hex()}, nil)

		rec := fx.do(http.MethodGet, "/api/recipes/"+recipeID.Hex()+"/qr", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png", rec.Body.String())
	})
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	fx := createTestAPI(t)
	fx.do(http.MethodGet, "/health", "", nil)

	rec := fx.do(http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipebook_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/nowhere", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}
