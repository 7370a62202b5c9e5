// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// Validator checks an input DTO against its validate tags.
// Failures are returned as *domainerrors.ValidationError.
type Validator interface {
	Validate(input any) error
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"notblank" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6,bcryptlen" msg:"Please enter a password with 6 or more characters" msg_bcryptlen:"Password must be at most 72 bytes"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required,bcryptlen" msg:"Password is required" msg_bcryptlen:"Password must be at most 72 bytes"`
}

// --- Output DTOs ---

// AuthOutput carries the token issued on registration or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error)
}
