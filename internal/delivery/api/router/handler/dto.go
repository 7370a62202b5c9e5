package handler

import (
	"time"

	"recipebook/internal/domain/entity"
)

// UserResponse is the public view of a user. The password hash is never sent.
type UserResponse struct {
	ID     string    `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// TokenResponse is returned by registration and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// OwnerResponse is the user reference joined into a profile.
type OwnerResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ProfileResponse is a profile with its owner and recipe entries.
type ProfileResponse struct {
	ID      string                `json:"_id"`
	User    OwnerResponse         `json:"user"`
	Website string                `json:"website,omitempty"`
	Status  string                `json:"status"`
	Recipes []RecipeEntryResponse `json:"recipes"`
}

// RecipeEntryResponse is a recipe card embedded in a profile.
type RecipeEntryResponse struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Portions        *float64  `json:"portions,omitempty"`
	IngredientName  string    `json:"ingredientName"`
	IngredientCount float64   `json:"ingredientCount"`
	IngredientUnit  string    `json:"ingredientUnit"`
	Note            string    `json:"note,omitempty"`
	Instruction     string    `json:"instruction"`
	Category        string    `json:"category,omitempty"`
	CookingHours    *int      `json:"cookingHours,omitempty"`
	CookingMinutes  *int      `json:"cookingMinutes,omitempty"`
	Miniature       string    `json:"miniature,omitempty"`
	PublishDate     time.Time `json:"publishDate"`
}

// RecipeResponse is a recipe post.
type RecipeResponse struct {
	ID       string            `json:"_id"`
	User     string            `json:"user"`
	Name     string            `json:"name"`
	Avatar   string            `json:"avatar"`
	Text     string            `json:"text"`
	Likes    []LikeResponse    `json:"likes"`
	Comments []CommentResponse `json:"comments"`
	Date     time.Time         `json:"date"`
}

// LikeResponse is one like on a recipe.
type LikeResponse struct {
	ID   string `json:"_id"`
	User string `json:"user"`
}

// CommentResponse is one comment on a recipe.
type CommentResponse struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:     user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Date:   user.CreatedAt,
	}
}

func toProfileResponse(profile *entity.Profile) ProfileResponse {
	recipes := make([]RecipeEntryResponse, 0, len(profile.Recipes))
	for _, entry := range profile.Recipes {
		recipes = append(recipes, RecipeEntryResponse{
			ID:              entry.ID.Hex(),
			Title:           entry.Title,
			Portions:        entry.Portions,
			IngredientName:  entry.IngredientName,
			IngredientCount: entry.IngredientCount,
			IngredientUnit:  entry.IngredientUnit,
			Note:            entry.Note,
			Instruction:     entry.Instruction,
			Category:        entry.Category,
			CookingHours:    entry.CookingHours,
			CookingMinutes:  entry.CookingMinutes,
			Miniature:       entry.Miniature,
			PublishDate:     entry.PublishDate,
		})
	}

	return ProfileResponse{
		ID: profile.ID.Hex(),
		User: OwnerResponse{
			ID:     profile.User.ID.Hex(),
			Name:   profile.User.Name,
			Avatar: profile.User.Avatar,
		},
		Website: profile.Website,
		Status:  profile.Status,
		Recipes: recipes,
	}
}

func toProfileResponses(profiles []*entity.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, toProfileResponse(profile))
	}

	return out
}

func toRecipeResponse(recipe *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:       recipe.ID.Hex(),
		User:     recipe.User.Hex(),
		Name:     recipe.Name,
		Avatar:   recipe.Avatar,
		Text:     recipe.Text,
		Likes:    toLikeResponses(recipe.Likes),
		Comments: toCommentResponses(recipe.Comments),
		Date:     recipe.Date,
	}
}

func toRecipeResponses(recipes []*entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}

	return out
}

func toLikeResponses(likes []entity.Like) []LikeResponse {
	out := make([]LikeResponse, 0, len(likes))
	for _, like := range likes {
		out = append(out, LikeResponse{ID: like.ID.Hex(), User: like.User.Hex()})
	}

	return out
}

func toCommentResponses(comments []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, CommentResponse{
			ID:     comment.ID.Hex(),
			User:   comment.User.Hex(),
			Text:   comment.Text,
			Name:   comment.Name,
			Avatar: comment.Avatar,
			Date:   comment.Date,
		})
	}

	return out
}
