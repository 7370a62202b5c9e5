package impl

import (
	"context"
	"testing"
	"time"

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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T, cascadeRecipes bool) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Validator:   validation.New(),
		Publisher:   publisher,
		Config:      newTestConfig(cascadeRecipes),
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     srv,
		txManager:   txManager,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func validEntryInput() *usecase.RecipeEntryInput {
	return &usecase.RecipeEntryInput{
		Title:           "Pancakes",
		Portions:        float64Ptr(4),
		IngredientName:  "flour",
		IngredientCount: float64Ptr(250),
		IngredientUnit:  "g",
		Instruction:     "Mix and fry.",
		CookingMinutes:  intPtr(20),
	}
}

func TestProfileService_GetMine(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t, true)
		profile := &entity.Profile{ID: primitive.NewObjectID(), User: entity.UserSummary{ID: userID, Name: "Ada"}}
		fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

		got, err := fx.service.GetMine(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestProfileService(t, true)
		fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GetMine(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestProfileService_UpsertMine_Success(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	website := " https://ada.dev "

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.profileRepo.EXPECT().
		Upsert(ctx, userID, mock.MatchedBy(func(fields entity.ProfileFields) bool {
			return fields.Status == "Cooking" && fields.Website != nil && *fields.Website == "https://ada.dev"
		})).
		Return(&entity.Profile{Status: "Cooking", Website: "https://ada.dev"}, nil)

	profile, err := fx.service.UpsertMine(ctx, userID, &usecase.UpsertProfileInput{Website: &website, Status: " Cooking "})

	require.NoError(t, err)
	assert.Equal(t, "Cooking", profile.Status)
}

func TestProfileService_UpsertMine_WebsiteOmitted(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.profileRepo.EXPECT().
		Upsert(ctx, userID, entity.ProfileFields{Status: "Baking"}).
		Return(&entity.Profile{Status: "Baking", Website: "kept"}, nil)

	profile, err := fx.service.UpsertMine(ctx, userID, &usecase.UpsertProfileInput{Status: "Baking"})

	require.NoError(t, err)
	assert.Equal(t, "kept", profile.Website)
}

func TestProfileService_UpsertMine_StatusRequired(t *testing.T) {
	fx := createTestProfileService(t, true)

	_, err := fx.service.UpsertMine(context.Background(), primitive.NewObjectID(), &usecase.UpsertProfileInput{Status: "   "})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "status", validationErr.Fields()[0].Param)
	assert.Equal(t, "Status is required", validationErr.Fields()[0].Msg)
}

func TestProfileService_UpsertMine_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpsertMine(ctx, userID, &usecase.UpsertProfileInput{Status: "Baking"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id reads as not found", func(t *testing.T) {
		fx := createTestProfileService(t, true)

		_, err := fx.service.GetByUserID(ctx, "not-an-object-id")

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t, true)
		userID := primitive.NewObjectID()
		profile := &entity.Profile{User: entity.UserSummary{ID: userID}}
		fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

		got, err := fx.service.GetByUserID(ctx, userID.Hex())

		require.NoError(t, err)
		assert.Same(t, profile, got)
	})
}

func TestProfileService_ListAll(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	profiles := []*entity.Profile{{Status: "a"}, {Status: "b"}}

	fx.profileRepo.EXPECT().List(ctx).Return(profiles, nil)

	got, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func expectDeleteTransaction(t *testing.T, fx profileServiceFixtures, userID primitive.ObjectID, cascade bool) *mockRepo.MockRecipeRepository {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().UserRepo().Return(userRepo)
			profileRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
			userRepo.EXPECT().Delete(ctx, userID).Return(nil)
			if cascade {
				factory.EXPECT().RecipeRepo().Return(recipeRepo)
				recipeRepo.EXPECT().DeleteByAuthor(ctx, userID).Return(3, nil)
			}

			return fn(ctx, factory)
		})

	return recipeRepo
}

func TestProfileService_DeleteMine_CascadesRecipes(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	expectDeleteTransaction(t, fx, userID, true)
	fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventAccountDeleted)).Return(nil)

	require.NoError(t, fx.service.DeleteMine(ctx, userID))
}

func TestProfileService_DeleteMine_KeepsRecipesWhenCascadeDisabled(t *testing.T) {
	fx := createTestProfileService(t, false)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	recipeRepo := expectDeleteTransaction(t, fx, userID, false)
	fx.publisher.EXPECT().Publish(ctx, isEvent(service.EventAccountDeleted)).Return(nil)

	require.NoError(t, fx.service.DeleteMine(ctx, userID))
	recipeRepo.AssertNotCalled(t, "DeleteByAuthor", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteMine_TransactionFailure(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	txErr := errors.New("write conflict")

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(txErr)

	err := fx.service.DeleteMine(ctx, primitive.NewObjectID())

	assert.ErrorIs(t, err, txErr)
}

func TestProfileService_AddRecipeEntry_Success(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	before := time.Now().UTC()

	var stored *entity.RecipeEntry
	fx.profileRepo.EXPECT().
		PrependRecipeEntry(ctx, userID, mock.AnythingOfType("*entity.RecipeEntry")).
		Run(func(_ context.Context, _ primitive.ObjectID, entry *entity.RecipeEntry) {
			stored = entry
		}).
		Return(&entity.Profile{}, nil)

	_, err := fx.service.AddRecipeEntry(ctx, userID, validEntryInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.ID.IsZero())
	assert.Equal(t, "Pancakes", stored.Title)
	assert.InDelta(t, 250, stored.IngredientCount, 0)
	assert.Equal(t, 20, *stored.CookingMinutes)
	assert.False(t, stored.PublishDate.Before(before))
}

func TestProfileService_AddRecipeEntry_ValidationFailure(t *testing.T) {
	fx := createTestProfileService(t, true)
	input := validEntryInput()
	input.Title = ""
	input.IngredientCount = nil
	input.CookingMinutes = intPtr(75)

	_, err := fx.service.AddRecipeEntry(context.Background(), primitive.NewObjectID(), input)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	params := make([]string, 0, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		params = append(params, f.Param)
	}
	assert.Equal(t, []string{"title", "ingredientCount", "cookingMinutes"}, params)
}

func TestProfileService_AddRecipeEntry_NoProfile(t *testing.T) {
	fx := createTestProfileService(t, true)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.profileRepo.EXPECT().PrependRecipeEntry(ctx, userID, mock.Anything).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.AddRecipeEntry(ctx, userID, validEntryInput())

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_RemoveRecipeEntry(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	entryID := primitive.NewObjectID()

	t.Run("removed", func(t *testing.T) {
		fx := createTestProfileService(t, true)
		fx.profileRepo.EXPECT().RemoveRecipeEntry(ctx, userID, entryID).Return(&entity.Profile{}, nil)

		_, err := fx.service.RemoveRecipeEntry(ctx, userID, entryID.Hex())

		require.NoError(t, err)
	})

	t.Run("unknown entry", func(t *testing.T) {
		fx := createTestProfileService(t, true)
		fx.profileRepo.EXPECT().RemoveRecipeEntry(ctx, userID, entryID).Return(nil, repository.ErrRecipeEntryNotFound)

		_, err := fx.service.RemoveRecipeEntry(ctx, userID, entryID.Hex())

		assert.ErrorIs(t, err, domainerrors.ErrRecipeEntryNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestProfileService(t, true)

		_, err := fx.service.RemoveRecipeEntry(ctx, userID, "xyz")

		assert.ErrorIs(t, err, domainerrors.ErrRecipeEntryNotFound)
	})
}
