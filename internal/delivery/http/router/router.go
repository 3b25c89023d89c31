// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lens/internal/delivery/http/middleware"
	"lens/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	VisionHandler  *handler.VisionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	visionHandler  *handler.VisionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		visionHandler:  params.VisionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. The refresh cookie is path-scoped to this prefix.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/check", r.authHandler.Check)
		// Revoking every session needs a live access token, not just the cookie.
		authGroup.POST("/sign-out-all", r.authMiddleware.Authenticate(r.authHandler.SignOutAll))
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("/messages", r.userHandler.GetMessages)
	}

	// Vision routes that require authentication
	visionGroup := e.Group("/vision")
	visionGroup.Use(r.authMiddleware.Authenticate)
	{
		visionGroup.POST("/detect", r.visionHandler.Detect)
		visionGroup.POST("/ask", r.visionHandler.Ask)
	}
}
