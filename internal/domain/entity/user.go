// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity record of a person using the application.
// PasswordHash is the only credential kept; the raw password is never stored.
type User struct {
	ID           primitive.ObjectID // Document id, also the subject of issued tokens.
	Name         string             // Display name, copied into recipes and comments at write time.
	Email        string             // Unique login key.
	PasswordHash string             // bcrypt hash of the password.
	Avatar       string             // Gravatar URL derived from the email at registration.
	CreatedAt    time.Time          // Registration time.
}

// UserSummary is the public part of a user joined into other documents.
type UserSummary struct {
	ID     primitive.ObjectID
	Name   string
	Avatar string
}

// Summary returns the public part of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
