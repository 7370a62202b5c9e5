package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenUser is the identity embedded in a token.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims defines the custom claims for the JWT tokens: {"user":{"id":...}} plus registered claims.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed token identifying userID.
	GenerateToken(userID primitive.ObjectID) (string, error)

	// ValidateToken verifies signature and expiry and returns the user id carried by the token.
	ValidateToken(tokenString string) (primitive.ObjectID, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
