package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// RecipeUsecase defines the interface for recipe-related business operations.
// Ids taken from the URL are passed as strings; a malformed id reads as not found.
type RecipeUsecase interface {
	Create(ctx context.Context, userID primitive.ObjectID, input *RecipeInput) (*entity.Recipe, error)
	List(ctx context.Context) ([]*entity.Recipe, error)
	Get(ctx context.Context, recipeID string) (*entity.Recipe, error)
	Delete(ctx context.Context, userID primitive.ObjectID, recipeID string) error
	Like(ctx context.Context, userID primitive.ObjectID, recipeID string) ([]entity.Like, error)
	Unlike(ctx context.Context, userID primitive.ObjectID, recipeID string) ([]entity.Like, error)
	AddComment(ctx context.Context, userID primitive.ObjectID, recipeID string, input *CommentInput) ([]entity.Comment, error)
	RemoveComment(ctx context.Context, userID primitive.ObjectID, recipeID, commentID string) ([]entity.Comment, error)
	ShareCode(ctx context.Context, recipeID string) (*ShareCodeOutput, error)
}

// --- Input DTOs ---

// RecipeInput defines the data required to post a recipe.
type RecipeInput struct {
	Text string `json:"text" validate:"notblank" msg:"Text is required"`
}

// CommentInput defines the data required to comment on a recipe.
type CommentInput struct {
	Text string `json:"text" validate:"notblank" msg:"Text is required"`
}

// --- Output DTOs ---

// ShareCodeOutput is a PNG QR code and the URL it encodes.
type ShareCodeOutput struct {
	PNG []byte
	URL string
}
