package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCodeService generates share codes for recipes.
type QRCodeService interface {
	// GenerateRecipeQR returns a PNG QR code pointing at the recipe's public URL.
	GenerateRecipeQR(recipeID primitive.ObjectID) ([]byte, error)

	// RecipeURL returns the public URL encoded in the recipe's QR code.
	RecipeURL(recipeID primitive.ObjectID) string
}
