package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

func TestToProfileEntity_JoinsOwner(t *testing.T) {
	userID := primitive.NewObjectID()
	entryID := primitive.NewObjectID()

	profile := ToProfileEntity(&ProfileModel{
		ID:     primitive.NewObjectID(),
		User:   userID,
		Status: "Chef",
		Recipes: []RecipeEntryModel{
			{ID: entryID, Title: "Soup", IngredientCount: 2},
		},
		Owner: &OwnerModel{ID: userID, Name: "Ann", Avatar: "https://a"},
	})

	assert.Equal(t, entity.UserSummary{ID: userID, Name: "Ann", Avatar: "https://a"}, profile.User)
	assert.Len(t, profile.Recipes, 1)
	assert.Equal(t, entryID, profile.Recipes[0].ID)
}

func TestToProfileEntity_WithoutOwnerKeepsID(t *testing.T) {
	userID := primitive.NewObjectID()

	profile := ToProfileEntity(&ProfileModel{User: userID, Status: "Chef"})

	assert.Equal(t, userID, profile.User.ID)
	assert.Empty(t, profile.User.Name)
	assert.NotNil(t, profile.Recipes)
}

func TestFromRecipeEntity_StoresEmptyArrays(t *testing.T) {
	m := FromRecipeEntity(&entity.Recipe{User: primitive.NewObjectID(), Text: "hi", Date: time.Now()})

	assert.NotNil(t, m.Likes)
	assert.NotNil(t, m.Comments)
	assert.Empty(t, m.Likes)
}

func TestUserRoundTripKeepsPasswordHash(t *testing.T) {
	user := &entity.User{ID: primitive.NewObjectID(), Name: "Ann", Email: "ann@example.com", PasswordHash: "$2a$10$x"}

	assert.Equal(t, user, ToUserEntity(FromUserEntity(user)))
}
