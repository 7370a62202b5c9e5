package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	"recipebook/config"
	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/entity"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/repository"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
	"recipebook/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	validator      usecase.Validator
	publisher      service.EventPublisher
	cascadeRecipes bool
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Validator   usecase.Validator
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	cascade := true
	if params.Config != nil && params.Config.Profile != nil {
		cascade = params.Config.Profile.CascadeRecipes
	}

	return &profileService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		validator:      params.Validator,
		publisher:      params.Publisher,
		cascadeRecipes: cascade,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// profileError maps repository outcomes onto the API error catalogue.
func profileError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return domainerrors.ErrProfileNotFound
	case errors.Is(err, repository.ErrRecipeEntryNotFound):
		return domainerrors.ErrRecipeEntryNotFound
	default:
		return errors.Wrap(err, action)
	}
}

// GetMine returns the caller's profile with the owner joined.
func (srv *profileService) GetMine(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, profileError(err, "failed to get profile")
	}

	return profile, nil
}

// UpsertMine creates the caller's profile or updates the supplied fields of it.
func (srv *profileService) UpsertMine(ctx context.Context, userID primitive.ObjectID, input *usecase.UpsertProfileInput) (*entity.Profile, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	// A profile must reference an existing user.
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile owner")
	}

	fields := entity.ProfileFields{Status: strings.TrimSpace(input.Status)}
	if input.Website != nil {
		website := strings.TrimSpace(*input.Website)
		fields.Website = &website
	}

	profile, err := srv.profileRepo.Upsert(ctx, userID, fields)
	if err != nil {
		return nil, profileError(err, "failed to save profile")
	}

	srv.log(ctx).Debug("Profile saved", slog.String("userID", userID.Hex()))

	return profile, nil
}

// ListAll returns every profile.
func (srv *profileService) ListAll(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// GetByUserID returns the profile of the given user.
func (srv *profileService) GetByUserID(ctx context.Context, rawUserID string) (*entity.Profile, error) {
	userID, err := parseObjectID(rawUserID, domainerrors.ErrProfileNotFound)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, profileError(err, "failed to get profile")
	}

	return profile, nil
}

// DeleteMine removes the caller's profile, optionally their recipes, then the account itself.
func (srv *profileService) DeleteMine(ctx context.Context, userID primitive.ObjectID) error {
	var removedRecipes int64
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repoFactory repository.RepositoryFactory) error {
		removedRecipes = 0

		if err := repoFactory.ProfileRepo().DeleteByUserID(txCtx, userID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		if srv.cascadeRecipes {
			n, err := repoFactory.RecipeRepo().DeleteByAuthor(txCtx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to delete recipes")
			}
			removedRecipes = n
		}

		if err := repoFactory.UserRepo().Delete(txCtx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.String("userID", userID.Hex()), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted",
		slog.String("userID", userID.Hex()),
		slog.Int64("removedRecipes", removedRecipes),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), newEvent(ctx, service.EventAccountDeleted, userID))

	return nil
}

// AddRecipeEntry validates the entry and puts it at the head of the caller's recipes.
func (srv *profileService) AddRecipeEntry(ctx context.Context, userID primitive.ObjectID, input *usecase.RecipeEntryInput) (*entity.Profile, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	entry := toRecipeEntry(input)
	profile, err := srv.profileRepo.PrependRecipeEntry(ctx, userID, entry)
	if err != nil {
		return nil, profileError(err, "failed to add recipe entry")
	}

	return profile, nil
}

// RemoveRecipeEntry removes exactly the entry with entryID from the caller's profile.
func (srv *profileService) RemoveRecipeEntry(ctx context.Context, userID primitive.ObjectID, rawEntryID string) (*entity.Profile, error) {
	entryID, err := parseObjectID(rawEntryID, domainerrors.ErrRecipeEntryNotFound)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.RemoveRecipeEntry(ctx, userID, entryID)
	if err != nil {
		return nil, profileError(err, "failed to remove recipe entry")
	}

	return profile, nil
}

func toRecipeEntry(input *usecase.RecipeEntryInput) *entity.RecipeEntry {
	publishDate := time.Now().UTC()
	if input.PublishDate != nil && !input.PublishDate.IsZero() {
		publishDate = input.PublishDate.UTC()
	}

	return &entity.RecipeEntry{
		ID:              primitive.NewObjectID(),
		Title:           strings.TrimSpace(input.Title),
		Portions:        input.Portions,
		IngredientName:  strings.TrimSpace(input.IngredientName),
		IngredientCount: *input.IngredientCount,
		IngredientUnit:  strings.TrimSpace(input.IngredientUnit),
		Note:            input.Note,
		Instruction:     input.Instruction,
		Category:        input.Category,
		CookingHours:    input.CookingHours,
		CookingMinutes:  input.CookingMinutes,
		Miniature:       input.Miniature,
		PublishDate:     publishDate,
	}
}
