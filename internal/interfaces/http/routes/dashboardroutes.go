package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "aster/internal/interfaces/http/handlers/dashboard"
	"aster/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *dashboardhandlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/api/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireStaff())
	{
		dashboard.GET("", config.DashboardHandler.GetSummary)
	}
}
