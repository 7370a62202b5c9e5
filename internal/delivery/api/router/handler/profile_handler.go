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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetMine handles GET /api/profile/me.
func (h *ProfileHandler) GetMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	profile, err := h.profileUC.GetMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Upsert handles POST /api/profile.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.UpsertProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	profile, err := h.profileUC.UpsertMine(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponses(profiles))
}

// GetByUser handles GET /api/profile/user/:user_id.
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	profile, err := h.profileUC.GetByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /api/profile. It removes the profile, the user's recipes and the account.
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.profileUC.DeleteMine(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted")
}

// AddRecipeEntry handles PUT /api/profile/recipes.
func (h *ProfileHandler) AddRecipeEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.RecipeEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid recipe entry input")
	}

	profile, err := h.profileUC.AddRecipeEntry(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// RemoveRecipeEntry handles DELETE /api/profile/recipes/:rcp_id.
func (h *ProfileHandler) RemoveRecipeEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	profile, err := h.profileUC.RemoveRecipeEntry(c.Request().Context(), userID, c.Param("rcp_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}
