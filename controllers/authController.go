package controllers

import (
	"CarePortal/handlers"
	"CarePortal/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
	limiter gin.HandlerFunc
}

// NewAuthController creates a new AuthController. The limiter guards login and registration.
func NewAuthController(authHandler *handlers.AuthHandler, limiter gin.HandlerFunc) *AuthController {
	return &AuthController{
		Handler: authHandler,
		limiter: limiter,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No session required
	router.GET("/auth/login", ac.Handler.LoginPage)
	router.POST("/auth/logout", ac.Handler.Logout)

	limited := router.Group("/auth", ac.limiter)
	{
		limited.POST("/register", ac.Handler.Register)
		limited.POST("/login", ac.Handler.Login)
	}

	// Protected routes: Requires a valid session
	authGroup := router.Group("/auth", middlewares.RequireAuth())
	{
		authGroup.GET("/me", ac.Handler.Me)
	}
}
