package repository

import (
	"context"
	"errors"

	"recipebook/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRecipeEntryNotFound is returned when a profile has no entry with the requested id.
	ErrRecipeEntryNotFound = errors.New("recipe entry not found")
)

// ProfileRepository persists profiles and their embedded recipe entries.
// Read methods join the owner's name and avatar into Profile.User.
type ProfileRepository interface {
	// FindByUserID returns the profile owned by userID.
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error)

	// List returns every profile.
	List(ctx context.Context) ([]*entity.Profile, error)

	// Upsert creates the profile of userID or updates the supplied fields of the existing one,
	// returning the stored document.
	Upsert(ctx context.Context, userID primitive.ObjectID, fields entity.ProfileFields) (*entity.Profile, error)

	// DeleteByUserID removes the profile owned by userID. Deleting a missing profile is not an error.
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error

	// PrependRecipeEntry inserts entry at the head of the recipe list and returns the updated profile.
	PrependRecipeEntry(ctx context.Context, userID primitive.ObjectID, entry *entity.RecipeEntry) (*entity.Profile, error)

	// RemoveRecipeEntry removes the entry with entryID and returns the updated profile.
	RemoveRecipeEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*entity.Profile, error)
}
