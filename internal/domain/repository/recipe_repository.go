package repository

import (
	"context"
	"errors"

	"recipebook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRecipeNotFound is returned when no recipe matches the id.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrAlreadyLiked is returned when the user already has a like on the recipe.
	ErrAlreadyLiked = errors.New("recipe already liked")

	// ErrNotLiked is returned when the user has no like on the recipe.
	ErrNotLiked = errors.New("recipe not liked")

	// ErrCommentNotFound is returned when no comment matches the id and author.
	ErrCommentNotFound = errors.New("comment not found")
)

// RecipeRepository persists recipes. Like and comment mutations are single
// atomic updates on the recipe document.
type RecipeRepository interface {
	// Create persists a new recipe and assigns its ID.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe by id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Recipe, error)

	// List returns all recipes, newest first.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// Delete removes a recipe.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByAuthor removes every recipe written by userID and returns how many were removed.
	DeleteByAuthor(ctx context.Context, userID primitive.ObjectID) (int64, error)

	// AddLike prepends a like by userID unless one exists, returning the updated likes.
	AddLike(ctx context.Context, recipeID primitive.ObjectID, like *entity.Like) ([]entity.Like, error)

	// RemoveLike removes the like of userID, returning the updated likes.
	RemoveLike(ctx context.Context, recipeID, userID primitive.ObjectID) ([]entity.Like, error)

	// AddComment prepends a comment, returning the updated comments.
	AddComment(ctx context.Context, recipeID primitive.ObjectID, comment *entity.Comment) ([]entity.Comment, error)

	// RemoveComment removes the comment with commentID written by authorID, returning the updated comments.
	RemoveComment(ctx context.Context, recipeID, commentID, authorID primitive.ObjectID) ([]entity.Comment, error)
}
