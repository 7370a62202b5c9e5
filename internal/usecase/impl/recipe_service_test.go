package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverycontext "recipebook/internal/delivery/context"
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

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
	qrService  *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewRecipeService(RecipeServiceParams{
		UserRepo:   userRepo,
		RecipeRepo: recipeRepo,
		Validator:  validation.New(),
		QRService:  qrService,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    srv,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		qrService:  qrService,
		publisher:  publisher,
	}
}

func TestRecipeService_Create_SnapshotsAuthor(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	userID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Ada", Avatar: "https://avatar/ada"}, nil)
	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(_ context.Context, recipe *entity.Recipe) {
			recipe.ID = recipeID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(evt *service.DomainEvent) bool {
			return evt.Type == service.EventRecipeCreated &&
				evt.RecipeID == recipeID.Hex() &&
				evt.ActorID == userID.Hex() &&
				evt.RequestID == "req-1"
		})).
		Return(nil)

	recipe, err := fx.service.Create(ctx, userID, &usecase.RecipeInput{Text: " Slow-cooked ragu "})

	require.NoError(t, err)
	assert.Equal(t, userID, recipe.User)
	assert.Equal(t, "Ada", recipe.Name)
	assert.Equal(t, "https://avatar/ada", recipe.Avatar)
	assert.Equal(t, "Slow-cooked ragu", recipe.Text)
	assert.NotNil(t, recipe.Likes)
	assert.Empty(t, recipe.Likes)
	assert.NotNil(t, recipe.Comments)
	assert.Empty(t, recipe.Comments)
}

func TestRecipeService_Create_TextRequired(t *testing.T) {
	fx := createTestRecipeService(t)

	_, err := fx.service.Create(context.Background(), primitive.NewObjectID(), &usecase.RecipeInput{Text: ""})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Text is required", validationErr.Fields()[0].Msg)
}

func TestRecipeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestRecipeService(t)

		_, err := fx.service.Get(ctx, "12345")

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestRecipeService(t)
		recipeID := primitive.NewObjectID()
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(nil, repository.ErrRecipeNotFound)

		_, err := fx.service.Get(ctx, recipeID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

func TestRecipeService_List(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().List(ctx).Return([]*entity.Recipe{{Text: "newest"}, {Text: "oldest"}}, nil)

	recipes, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "newest", recipes[0].Text)
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()
	authorID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()
	recipe := &entity.Recipe{ID: recipeID, User: authorID}

	t.Run("author deletes", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)
		fx.recipeRepo.EXPECT().Delete(ctx, recipeID).Return(nil)
		fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventRecipeDeleted)).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, authorID, recipeID.Hex()))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)

		err := fx.service.Delete(ctx, primitive.NewObjectID(), recipeID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)
		fx.recipeRepo.EXPECT().Delete(ctx, recipeID).Return(repository.ErrRecipeNotFound)

		err := fx.service.Delete(ctx, authorID, recipeID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

func TestRecipeService_Like(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	t.Run("first like", func(t *testing.T) {
		fx := createTestRecipeService(t)
		likes := []entity.Like{{ID: primitive.NewObjectID(), User: userID}}
		fx.recipeRepo.EXPECT().
			AddLike(ctx, recipeID, mock.MatchedBy(func(like *entity.Like) bool {
				return like.User == userID && !like.ID.IsZero()
			})).
			Return(likes, nil)
		fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventRecipeLiked)).Return(nil)

		got, err := fx.service.Like(ctx, userID, recipeID.Hex())

		require.NoError(t, err)
		assert.Equal(t, likes, got)
	})

	t.Run("second like is rejected", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().AddLike(ctx, recipeID, mock.Anything).Return(nil, repository.ErrAlreadyLiked)

		_, err := fx.service.Like(ctx, userID, recipeID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrRecipeAlreadyLiked)
	})
}

func TestRecipeService_Unlike(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	t.Run("removes like", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().RemoveLike(ctx, recipeID, userID).Return([]entity.Like{}, nil)
		fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventRecipeUnliked)).Return(nil)

		got, err := fx.service.Unlike(ctx, userID, recipeID.Hex())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("not liked", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().RemoveLike(ctx, recipeID, userID).Return(nil, repository.ErrNotLiked)

		_, err := fx.service.Unlike(ctx, userID, recipeID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotLiked)
	})
}

func TestRecipeService_AddComment(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Grace", Avatar: "g.png"}, nil)

	var stored *entity.Comment
	fx.recipeRepo.EXPECT().
		AddComment(ctx, recipeID, mock.AnythingOfType("*entity.Comment")).
		RunAndReturn(func(_ context.Context, _ primitive.ObjectID, comment *entity.Comment) ([]entity.Comment, error) {
			stored = comment
			return []entity.Comment{*comment}, nil
		})
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(evt *service.DomainEvent) bool {
			return evt.Type == service.EventCommentAdded && evt.CommentID != ""
		})).
		Return(nil)

	comments, err := fx.service.AddComment(ctx, userID, recipeID.Hex(), &usecase.CommentInput{Text: "Lovely"})

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Grace", stored.Name)
	assert.Equal(t, "g.png", stored.Avatar)
	assert.Equal(t, "Lovely", stored.Text)
	assert.Equal(t, userID, stored.User)
}

func TestRecipeService_AddComment_UnknownRecipe(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.recipeRepo.EXPECT().AddComment(ctx, recipeID, mock.Anything).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.AddComment(ctx, userID, recipeID.Hex(), &usecase.CommentInput{Text: "hi"})

	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_RemoveComment(t *testing.T) {
	ctx := context.Background()
	authorID := primitive.NewObjectID()
	recipeID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	recipe := &entity.Recipe{
		ID:       recipeID,
		User:     primitive.NewObjectID(),
		Comments: []entity.Comment{{ID: commentID, User: authorID, Text: "mine"}},
	}

	t.Run("author removes own comment", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)
		fx.recipeRepo.EXPECT().RemoveComment(ctx, recipeID, commentID, authorID).Return([]entity.Comment{}, nil)
		fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventCommentRemoved)).Return(nil)

		comments, err := fx.service.RemoveComment(ctx, authorID, recipeID.Hex(), commentID.Hex())

		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("someone else is forbidden", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)

		_, err := fx.service.RemoveComment(ctx, recipe.User, recipeID.Hex(), commentID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown comment", func(t *testing.T) {
		fx := createTestRecipeService(t)
		fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(recipe, nil)

		_, err := fx.service.RemoveComment(ctx, authorID, recipeID.Hex(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
	})
}

func TestRecipeService_ShareCode(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	recipeID := primitive.NewObjectID()

	fx.recipeRepo.EXPECT().FindByID(ctx, recipeID).Return(&entity.Recipe{ID: recipeID}, nil)
	fx.qrService.EXPECT().GenerateRecipeQR(recipeID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)
	fx.qrService.EXPECT().RecipeURL(recipeID).Return("http://localhost:3000/recipes/" + recipeID.Hex())

	out, err := fx.service.ShareCode(ctx, recipeID.Hex())

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, out.PNG)
	assert.Contains(t, out.URL, recipeID.Hex())
}
