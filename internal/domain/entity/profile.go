package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the public page of a user together with the recipes they keep on it.
// There is at most one profile per user.
type Profile struct {
	ID      primitive.ObjectID
	User    UserSummary // Owner reference. Name and Avatar are only set when the owner was joined.
	Website string
	Status  string
	Recipes []RecipeEntry // Newest first.
}

// FindRecipeEntry returns the entry with the given id.
func (p *Profile) FindRecipeEntry(id primitive.ObjectID) (*RecipeEntry, bool) {
	for i := range p.Recipes {
		if p.Recipes[i].ID == id {
			return &p.Recipes[i], true
		}
	}

	return nil, false
}

// ProfileFields are the owner-editable profile fields.
// A nil Website leaves the stored value untouched.
type ProfileFields struct {
	Website *string
	Status  string
}

// RecipeEntry is a recipe card embedded in a profile. It has no lifecycle of its own.
type RecipeEntry struct {
	ID              primitive.ObjectID
	Title           string
	Portions        *float64
	IngredientName  string
	IngredientCount float64
	IngredientUnit  string
	Note            string
	Instruction     string
	Category        string
	CookingHours    *int
	CookingMinutes  *int
	Miniature       string // Opaque reference to an image stored elsewhere.
	PublishDate     time.Time
}
