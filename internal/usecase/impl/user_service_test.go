package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/repository"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
	mockRepo "recipebook/internal/mocks/repository"
	mockSvc "recipebook/internal/mocks/service"
	"recipebook/internal/usecase"
	"recipebook/internal/validation"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	avatars      *mockSvc.MockAvatarProvider
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	avatars := mockSvc.NewMockAvatarProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Avatars:      avatars,
		Validator:    validation.New(),
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		avatars:      avatars,
		publisher:    publisher,
	}
}

func isEvent(eventType service.EventType) interface{} {
	return mock.MatchedBy(func(evt *service.DomainEvent) bool {
		return evt.Type == eventType && evt.ID != ""
	})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	newID := primitive.NewObjectID()

	input := &usecase.RegisterInput{
		Name:     "  Ada  ",
		Email:    " Ada@Example.COM ",
		Password: "secret1",
	}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().AvatarURL("ada@example.com").Return("https://avatar/ada")
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(newID).Return("token-123", nil)
	fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventAccountRegistered)).Return(nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-123", out.Token)
	assert.Equal(t, "Ada", out.User.Name)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, "https://avatar/ada", out.User.Avatar)
	assert.False(t, out.User.CreatedAt.IsZero())
}

func TestUserService_Register_ValidationFailure(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     " ",
		Email:    "not-an-email",
		Password: "123",
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	params := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		params = append(params, f.Param)
	}
	assert.Equal(t, []string{"name", "email", "password"}, params)
	assert.Equal(t, "Please enter a password with 6 or more characters", validationErr.Fields()[2].Msg)
}

func TestUserService_PasswordByteBound(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"72 ascii bytes", strings.Repeat("p", 72), false},
		{"73 ascii bytes", strings.Repeat("p", 73), true},
		{"36 two-byte runes", strings.Repeat("é", 36), false},
		{"37 two-byte runes", strings.Repeat("é", 37), true},
	}

	for _, tt := range tests {
		t.Run("register "+tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			if !tt.wantErr {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: primitive.NewObjectID()}, nil)
			}

			_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: tt.password})

			if !tt.wantErr {
				// Passed validation and reached the email lookup.
				assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

				return
			}
			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Len(t, validationErr.Fields(), 1)
			assert.Equal(t, "password", validationErr.Fields()[0].Param)
			assert.Equal(t, "Password must be at most 72 bytes", validationErr.Fields()[0].Msg)
		})
	}

	t.Run("login rejects before touching the store", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: strings.Repeat("p", 73)})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "Password must be at most 72 bytes", validationErr.Fields()[0].Msg)
	})
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: primitive.NewObjectID()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_DuplicateKeyRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().AvatarURL("ada@example.com").Return("https://avatar/ada")
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("boom"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().AvatarURL("ada@example.com").Return("")
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.Anything).Return("token", nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: primitive.NewObjectID(), Email: "ada@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("token-abc", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().CheckDummy("secret1").Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: primitive.NewObjectID(), Email: "ada@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_MissingPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com"})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "password", validationErr.Fields()[0].Param)
	assert.Equal(t, "Password is required", validationErr.Fields()[0].Msg)
}

func TestUserService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: userID, Name: "Ada"}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		got, err := fx.service.GetCurrentUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("deleted user is a server error", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetCurrentUser(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})

	t.Run("database error", func(t *testing.T) {
		fx := createTestUserService(t)
		dbErr := errors.New("connection reset")
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, dbErr)

		_, err := fx.service.GetCurrentUser(ctx, userID)

		assert.ErrorIs(t, err, dbErr)
	})
}
