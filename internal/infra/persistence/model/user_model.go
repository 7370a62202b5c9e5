// Package model holds the BSON document shapes stored in MongoDB and their
// mapping to domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// UserCollection is the collection holding UserModel documents.
const UserCollection = "users"

// UserModel mirrors a document in the 'users' collection. Email carries a unique index.
type UserModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Avatar   string             `bson:"avatar,omitempty"`
	Date     time.Time          `bson:"date"`
}

// OwnerModel is the projection of a user joined into profiles.
type OwnerModel struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar"`
}

// ToUserEntity maps a stored user to the domain entity.
func ToUserEntity(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.Password,
		Avatar:       data.Avatar,
		CreatedAt:    data.Date,
	}
}

// FromUserEntity maps a domain user to its document.
func FromUserEntity(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.PasswordHash,
		Avatar:   data.Avatar,
		Date:     data.CreatedAt,
	}
}
