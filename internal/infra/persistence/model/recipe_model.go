package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"recipebook/internal/domain/entity"
)

// RecipeCollection is the collection holding RecipeModel documents.
const RecipeCollection = "recipes"

// RecipeModel mirrors a document in the 'recipes' collection.
type RecipeModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	User     primitive.ObjectID `bson:"user"`
	Name     string             `bson:"name"`
	Avatar   string             `bson:"avatar,omitempty"`
	Text     string             `bson:"text"`
	Likes    []LikeModel        `bson:"likes"`
	Comments []CommentModel     `bson:"comments"`
	Date     time.Time          `bson:"date"`
}

// LikeModel is an element of RecipeModel.Likes.
type LikeModel struct {
	ID   primitive.ObjectID `bson:"_id"`
	User primitive.ObjectID `bson:"user"`
}

// CommentModel is an element of RecipeModel.Comments.
type CommentModel struct {
	ID     primitive.ObjectID `bson:"_id"`
	User   primitive.ObjectID `bson:"user"`
	Text   string             `bson:"text"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar,omitempty"`
	Date   time.Time          `bson:"date"`
}

// ToRecipeEntity maps a stored recipe to the domain entity.
func ToRecipeEntity(data *RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:       data.ID,
		User:     data.User,
		Name:     data.Name,
		Avatar:   data.Avatar,
		Text:     data.Text,
		Likes:    ToLikeEntities(data.Likes),
		Comments: ToCommentEntities(data.Comments),
		Date:     data.Date,
	}
}

// FromRecipeEntity maps a domain recipe to its document. Nil arrays are stored as empty arrays.
func FromRecipeEntity(data *entity.Recipe) *RecipeModel {
	if data == nil {
		return nil
	}

	m := &RecipeModel{
		ID:       data.ID,
		User:     data.User,
		Name:     data.Name,
		Avatar:   data.Avatar,
		Text:     data.Text,
		Likes:    make([]LikeModel, 0, len(data.Likes)),
		Comments: make([]CommentModel, 0, len(data.Comments)),
		Date:     data.Date,
	}
	for _, like := range data.Likes {
		m.Likes = append(m.Likes, FromLikeEntity(&like))
	}
	for _, comment := range data.Comments {
		m.Comments = append(m.Comments, FromCommentEntity(&comment))
	}

	return m
}

// ToLikeEntities maps stored likes, keeping order.
func ToLikeEntities(data []LikeModel) []entity.Like {
	likes := make([]entity.Like, 0, len(data))
	for _, like := range data {
		likes = append(likes, entity.Like{ID: like.ID, User: like.User})
	}

	return likes
}

func FromLikeEntity(data *entity.Like) LikeModel {
	return LikeModel{ID: data.ID, User: data.User}
}

// ToCommentEntities maps stored comments, keeping order.
func ToCommentEntities(data []CommentModel) []entity.Comment {
	comments := make([]entity.Comment, 0, len(data))
	for _, c := range data {
		comments = append(comments, entity.Comment{
			ID:     c.ID,
			User:   c.User,
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.Date,
		})
	}

	return comments
}

func FromCommentEntity(data *entity.Comment) CommentModel {
	return CommentModel{
		ID:     data.ID,
		User:   data.User,
		Text:   data.Text,
		Name:   data.Name,
		Avatar: data.Avatar,
		Date:   data.Date,
	}
}
