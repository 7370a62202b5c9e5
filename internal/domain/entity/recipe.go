package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a standalone post. Name and Avatar are a snapshot of the author
// taken at creation time and are not updated afterwards.
type Recipe struct {
	ID       primitive.ObjectID
	User     primitive.ObjectID // Author.
	Name     string
	Avatar   string
	Text     string
	Likes    []Like    // Newest first, at most one per user.
	Comments []Comment // Newest first.
	Date     time.Time
}

// IsAuthor reports whether userID wrote the recipe.
func (r *Recipe) IsAuthor(userID primitive.ObjectID) bool {
	return r.User == userID
}

// LikedBy reports whether userID already liked the recipe.
func (r *Recipe) LikedBy(userID primitive.ObjectID) bool {
	for _, like := range r.Likes {
		if like.User == userID {
			return true
		}
	}

	return false
}

// FindComment returns the comment with the given id.
func (r *Recipe) FindComment(id primitive.ObjectID) (*Comment, bool) {
	for i := range r.Comments {
		if r.Comments[i].ID == id {
			return &r.Comments[i], true
		}
	}

	return nil, false
}

// Like records that a user liked a recipe.
type Like struct {
	ID   primitive.ObjectID
	User primitive.ObjectID
}

// Comment is a remark left on a recipe. Name and Avatar are a snapshot of the commenter.
type Comment struct {
	ID     primitive.ObjectID
	User   primitive.ObjectID
	Text   string
	Name   string
	Avatar string
	Date   time.Time
}
