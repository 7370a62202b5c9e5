package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// ProfileCollection is the collection holding ProfileModel documents.
const ProfileCollection = "profiles"

// ProfileModel mirrors a document in the 'profiles' collection. User carries a unique index.
type ProfileModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	User    primitive.ObjectID `bson:"user"`
	Website string             `bson:"website,omitempty"`
	Status  string             `bson:"status"`
	Recipes []RecipeEntryModel `bson:"recipes"`

	// Owner is only present on documents read through the $lookup pipeline.
	Owner *OwnerModel `bson:"owner,omitempty"`
}

// RecipeEntryModel is an element of ProfileModel.Recipes.
type RecipeEntryModel struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	Portions        *float64           `bson:"portions,omitempty"`
	IngredientName  string             `bson:"ingredientName"`
	IngredientCount float64            `bson:"ingredientCount"`
	IngredientUnit  string             `bson:"ingredientUnit"`
	Note            string             `bson:"note,omitempty"`
	Instruction     string             `bson:"instruction"`
	Category        string             `bson:"category,omitempty"`
	CookingHours    *int               `bson:"cookingHours,omitempty"`
	CookingMinutes  *int               `bson:"cookingMinutes,omitempty"`
	Miniature       string             `bson:"miniature,omitempty"`
	PublishDate     time.Time          `bson:"publishDate"`
}

// ToProfileEntity maps a stored profile, with its joined owner when present, to the domain entity.
func ToProfileEntity(data *ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:      data.ID,
		User:    entity.UserSummary{ID: data.User},
		Website: data.Website,
		Status:  data.Status,
		Recipes: make([]entity.RecipeEntry, 0, len(data.Recipes)),
	}
	if data.Owner != nil {
		profile.User.Name = data.Owner.Name
		profile.User.Avatar = data.Owner.Avatar
	}
	for i := range data.Recipes {
		profile.Recipes = append(profile.Recipes, ToRecipeEntryEntity(&data.Recipes[i]))
	}

	return profile
}

// ToRecipeEntryEntity maps an embedded entry to the domain entity.
func ToRecipeEntryEntity(data *RecipeEntryModel) entity.RecipeEntry {
	return entity.RecipeEntry{
		ID:              data.ID,
		Title:           data.Title,
		Portions:        data.Portions,
		IngredientName:  data.IngredientName,
		IngredientCount: data.IngredientCount,
		IngredientUnit:  data.IngredientUnit,
		Note:            data.Note,
		Instruction:     data.Instruction,
		Category:        data.Category,
		CookingHours:    data.CookingHours,
		CookingMinutes:  data.CookingMinutes,
		Miniature:       data.Miniature,
		PublishDate:     data.PublishDate,
	}
}

// FromRecipeEntryEntity maps a domain entry to its embedded document.
func FromRecipeEntryEntity(data *entity.RecipeEntry) RecipeEntryModel {
	return RecipeEntryModel{
		ID:              data.ID,
		Title:           data.Title,
		Portions:        data.Portions,
		IngredientName:  data.IngredientName,
		IngredientCount: data.IngredientCount,
		IngredientUnit:  data.IngredientUnit,
		Note:            data.Note,
		Instruction:     data.Instruction,
		Category:        data.Category,
		CookingHours:    data.CookingHours,
		CookingMinutes:  data.CookingMinutes,
		Miniature:       data.Miniature,
		PublishDate:     data.PublishDate,
	}
}
