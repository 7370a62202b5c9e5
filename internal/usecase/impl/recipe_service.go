package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/entity"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/repository"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
	"recipebook/internal/usecase"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
	validator  usecase.Validator
	qrService  service.QRCodeService
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	RecipeRepo repository.RecipeRepository
	Validator  usecase.Validator
	QRService  service.QRCodeService
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		userRepo:   params.UserRepo,
		recipeRepo: params.RecipeRepo,
		validator:  params.Validator,
		qrService:  params.QRService,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// recipeError maps repository outcomes onto the API error catalogue.
func recipeError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrRecipeNotFound):
		return domainerrors.ErrRecipeNotFound
	case errors.Is(err, repository.ErrAlreadyLiked):
		return domainerrors.ErrRecipeAlreadyLiked
	case errors.Is(err, repository.ErrNotLiked):
		return domainerrors.ErrRecipeNotLiked
	case errors.Is(err, repository.ErrCommentNotFound):
		return domainerrors.ErrCommentNotFound
	default:
		return errors.Wrap(err, action)
	}
}

// author loads the caller whose name and avatar are copied into new recipes and comments.
func (srv *recipeService) author(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "token user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find author")
	}

	return user, nil
}

func (srv *recipeService) event(ctx context.Context, eventType service.EventType, actorID, recipeID primitive.ObjectID) *service.DomainEvent {
	evt := newEvent(ctx, eventType, actorID)
	evt.RecipeID = recipeID.Hex()

	return evt
}

// Create posts a recipe with a snapshot of the author's name and avatar.
func (srv *recipeService) Create(ctx context.Context, userID primitive.ObjectID, input *usecase.RecipeInput) (*entity.Recipe, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		User:     userID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Text:     strings.TrimSpace(input.Text),
		Likes:    []entity.Like{},
		Comments: []entity.Comment{},
		Date:     time.Now().UTC(),
	}
	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), srv.event(ctx, service.EventRecipeCreated, userID, recipe.ID))

	return recipe, nil
}

// List returns all recipes, newest first.
func (srv *recipeService) List(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *recipeService) Get(ctx context.Context, rawRecipeID string) (*entity.Recipe, error) {
	recipeID, err := parseObjectID(rawRecipeID, domainerrors.ErrRecipeNotFound)
	if err != nil {
		return nil, err
	}

	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, recipeError(err, "failed to get recipe")
	}

	return recipe, nil
}

// Delete removes a recipe. Only its author may do so.
func (srv *recipeService) Delete(ctx context.Context, userID primitive.ObjectID, rawRecipeID string) error {
	recipe, err := srv.Get(ctx, rawRecipeID)
	if err != nil {
		return err
	}

	if !recipe.IsAuthor(userID) {
		return domainerrors.ErrForbidden
	}

	if err := srv.recipeRepo.Delete(ctx, recipe.ID); err != nil {
		return recipeError(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.String("recipeID", recipe.ID.Hex()))
	publishEvent(ctx, srv.publisher, srv.log(ctx), srv.event(ctx, service.EventRecipeDeleted, userID, recipe.ID))

	return nil
}

// Like adds the caller's like unless they already liked the recipe.
func (srv *recipeService) Like(ctx context.Context, userID primitive.ObjectID, rawRecipeID string) ([]entity.Like, error) {
	recipeID, err := parseObjectID(rawRecipeID, domainerrors.ErrRecipeNotFound)
	if err != nil {
		return nil, err
	}

	likes, err := srv.recipeRepo.AddLike(ctx, recipeID, &entity.Like{ID: primitive.NewObjectID(), User: userID})
	if err != nil {
		return nil, recipeError(err, "failed to like recipe")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), srv.event(ctx, service.EventRecipeLiked, userID, recipeID))

	return likes, nil
}

// Unlike removes the caller's like.
func (srv *recipeService) Unlike(ctx context.Context, userID primitive.ObjectID, rawRecipeID string) ([]entity.Like, error) {
	recipeID, err := parseObjectID(rawRecipeID, domainerrors.ErrRecipeNotFound)
	if err != nil {
		return nil, err
	}

	likes, err := srv.recipeRepo.RemoveLike(ctx, recipeID, userID)
	if err != nil {
		return nil, recipeError(err, "failed to unlike recipe")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), srv.event(ctx, service.EventRecipeUnliked, userID, recipeID))

	return likes, nil
}

// AddComment puts a comment with the caller's name and avatar at the head of the list.
func (srv *recipeService) AddComment(ctx context.Context, userID primitive.ObjectID, rawRecipeID string, input *usecase.CommentInput) ([]entity.Comment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	recipeID, err := parseObjectID(rawRecipeID, domainerrors.ErrRecipeNotFound)
	if err != nil {
		return nil, err
	}

	user, err := srv.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:     primitive.NewObjectID(),
		User:   userID,
		Text:   strings.TrimSpace(input.Text),
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   time.Now().UTC(),
	}
	comments, err := srv.recipeRepo.AddComment(ctx, recipeID, comment)
	if err != nil {
		return nil, recipeError(err, "failed to add comment")
	}

	evt := srv.event(ctx, service.EventCommentAdded, userID, recipeID)
	evt.CommentID = comment.ID.Hex()
	publishEvent(ctx, srv.publisher, srv.log(ctx), evt)

	return comments, nil
}

// RemoveComment deletes the caller's own comment, identified by its id.
func (srv *recipeService) RemoveComment(ctx context.Context, userID primitive.ObjectID, rawRecipeID, rawCommentID string) ([]entity.Comment, error) {
	recipe, err := srv.Get(ctx, rawRecipeID)
	if err != nil {
		return nil, err
	}

	commentID, err := parseObjectID(rawCommentID, domainerrors.ErrCommentNotFound)
	if err != nil {
		return nil, err
	}

	comment, ok := recipe.FindComment(commentID)
	if !ok {
		return nil, domainerrors.ErrCommentNotFound
	}
	if comment.User != userID {
		return nil, domainerrors.ErrForbidden
	}

	comments, err := srv.recipeRepo.RemoveComment(ctx, recipe.ID, commentID, userID)
	if err != nil {
		return nil, recipeError(err, "failed to remove comment")
	}

	evt := srv.event(ctx, service.EventCommentRemoved, userID, recipe.ID)
	evt.CommentID = commentID.Hex()
	publishEvent(ctx, srv.publisher, srv.log(ctx), evt)

	return comments, nil
}

// ShareCode renders a QR code pointing at the recipe's public page.
func (srv *recipeService) ShareCode(ctx context.Context, rawRecipeID string) (*usecase.ShareCodeOutput, error) {
	recipe, err := srv.Get(ctx, rawRecipeID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateRecipeQR(recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return &usecase.ShareCodeOutput{PNG: png, URL: srv.qrService.RecipeURL(recipe.ID)}, nil
}
