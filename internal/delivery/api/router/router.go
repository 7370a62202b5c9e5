// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"recipebook/config"
	"recipebook/internal/delivery/api/middleware"
	"recipebook/internal/delivery/api/router/handler"
	"recipebook/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate
	api := e.Group("/api")

	// Registration and authentication
	api.POST("/users", r.userHandler.Register)
	api.POST("/auth", r.userHandler.Login)
	api.GET("/auth", r.userHandler.CurrentUser, auth)

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.GET("/user/:user_id", r.profileHandler.GetByUser)
		profileGroup.GET("/me", r.profileHandler.GetMine, auth)
		profileGroup.POST("", r.profileHandler.Upsert, auth)
		profileGroup.DELETE("", r.profileHandler.Delete, auth)
		profileGroup.PUT("/recipes", r.profileHandler.AddRecipeEntry, auth)
		profileGroup.DELETE("/recipes/:rcp_id", r.profileHandler.RemoveRecipeEntry, auth)
	}

	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
		recipeGroup.GET("/:id/qr", r.recipeHandler.ShareCode)
		recipeGroup.POST("", r.recipeHandler.Create, auth)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete, auth)
		recipeGroup.PUT("/like/:id", r.recipeHandler.Like, auth)
		recipeGroup.PUT("/unlike/:id", r.recipeHandler.Unlike, auth)
		recipeGroup.POST("/comment/:id", r.recipeHandler.AddComment, auth)
		recipeGroup.DELETE("/comment/:id/:comment_id", r.recipeHandler.RemoveComment, auth)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled in config.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
