package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"recipebook/internal/delivery/api/middleware"
	"recipebook/internal/delivery/api/response"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/errors"
	"recipebook/internal/usecase"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler holds dependencies for recipe handlers.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler.
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.RecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid recipe input")
	}

	recipe, err := h.recipeUC.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponse(recipe))
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipeUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponses(recipes))
}

// Get handles GET /api/recipes/:id.
func (h *RecipeHandler) Get(c echo.Context) error {
	recipe, err := h.recipeUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecipeResponse(recipe))
}

// Delete handles DELETE /api/recipes/:id.
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.recipeUC.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Recipe removed")
}

// Like handles PUT /api/recipes/like/:id.
func (h *RecipeHandler) Like(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	likes, err := h.recipeUC.Like(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLikeResponses(likes))
}

// Unlike handles PUT /api/recipes/unlike/:id.
func (h *RecipeHandler) Unlike(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	likes, err := h.recipeUC.Unlike(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLikeResponses(likes))
}

// AddComment handles POST /api/recipes/comment/:id.
func (h *RecipeHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}

	comments, err := h.recipeUC.AddComment(c.Request().Context(), userID, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// RemoveComment handles DELETE /api/recipes/comment/:id/:comment_id.
func (h *RecipeHandler) RemoveComment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	comments, err := h.recipeUC.RemoveComment(c.Request().Context(), userID, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponses(comments))
}

// ShareCode handles GET /api/recipes/:id/qr.
func (h *RecipeHandler) ShareCode(c echo.Context) error {
	out, err := h.recipeUC.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-Share-Url", out.URL)

	return response.PNG(c, out.PNG)
}
