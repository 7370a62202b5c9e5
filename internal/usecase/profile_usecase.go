package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Ids taken from the URL are passed as strings; a malformed id reads as not found.
type ProfileUsecase interface {
	GetMine(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error)
	UpsertMine(ctx context.Context, userID primitive.ObjectID, input *UpsertProfileInput) (*entity.Profile, error)
	ListAll(ctx context.Context) ([]*entity.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	DeleteMine(ctx context.Context, userID primitive.ObjectID) error
	AddRecipeEntry(ctx context.Context, userID primitive.ObjectID, input *RecipeEntryInput) (*entity.Profile, error)
	RemoveRecipeEntry(ctx context.Context, userID primitive.ObjectID, entryID string) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpsertProfileInput defines the owner-editable profile fields. A nil Website is left unchanged.
type UpsertProfileInput struct {
	Website *string `json:"website,omitempty"`
	Status  string  `json:"status" validate:"notblank" msg:"Status is required"`
}

// RecipeEntryInput defines a recipe card added to a profile.
type RecipeEntryInput struct {
	Title           string     `json:"title" validate:"notblank" msg:"Title is required"`
	Portions        *float64   `json:"portions,omitempty" validate:"omitempty,gt=0" msg:"Portions must be a positive number"`
	IngredientName  string     `json:"ingredientName" validate:"notblank" msg:"Ingredient name is required"`
	IngredientCount *float64   `json:"ingredientCount" validate:"required" msg:"Ingredient count is required"`
	IngredientUnit  string     `json:"ingredientUnit" validate:"notblank" msg:"Ingredient unit is required"`
	Note            string     `json:"note,omitempty"`
	Instruction     string     `json:"instruction" validate:"notblank" msg:"Instruction is required"`
	Category        string     `json:"category,omitempty"`
	CookingHours    *int       `json:"cookingHours,omitempty" validate:"omitempty,gte=0" msg:"Cooking hours cannot be negative"`
	CookingMinutes  *int       `json:"cookingMinutes,omitempty" validate:"omitempty,gte=0,lte=59" msg:"Cooking minutes must be between 0 and 59"`
	Miniature       string     `json:"miniature,omitempty"`
	PublishDate     *time.Time `json:"publishDate,omitempty"`
}
