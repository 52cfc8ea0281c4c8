package controllers

import (
	"CarePortal/handlers"
	"CarePortal/middlewares"
	"CarePortal/models"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute sets up the home route
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", handlers.Home)
}

// SetupDashboardRoutes mounts one dashboard per role. Each area only admits its own role.
func SetupDashboardRoutes(router *gin.Engine, dashboardHandler *handlers.DashboardHandler) {
	dashboard := router.Group("/dashboard", middlewares.RequireAuth())
	{
		dashboard.GET("", dashboardHandler.Dispatch)
		dashboard.GET("/admin", middlewares.RequireRole(models.RoleAdmin), dashboardHandler.Show)
		dashboard.GET("/doctor", middlewares.RequireRole(models.RoleDoctor), dashboardHandler.Show)
		dashboard.GET("/patient", middlewares.RequireRole(models.RolePatient), dashboardHandler.Show)
	}
}
