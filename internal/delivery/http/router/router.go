// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"supergames/internal/delivery/http/middleware"
	"supergames/internal/delivery/http/router/handler"
)

// RouterParams collects everything route registration needs.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	GameHandler    *handler.GameHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	gameHandler    *handler.GameHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router. Fx injects the handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		gameHandler:    params.GameHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth endpoints are open by definition.
	e.POST("/login", r.authHandler.Login)
	e.POST("/register", r.authHandler.Register)

	// Owned-game routes require a valid bearer token.
	gamesGroup := e.Group("/mygames")
	gamesGroup.Use(r.authMiddleware.Authenticate)
	{
		gamesGroup.GET("/:userId", r.gameHandler.ListGames)
		gamesGroup.POST("", r.gameHandler.AddGame)
		gamesGroup.DELETE("/:userId/:gameId", r.gameHandler.RemoveGame)
	}

	// Administrative user routes.
	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
