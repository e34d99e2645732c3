package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "aster/internal/interfaces/http/handlers/category"
	"aster/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/api/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones
		categories.GET("/tree",
			config.CategoryHandler.GetTree)

		categories.GET("/:id/references",
			config.CategoryHandler.GetReferences)

		categories.POST("",
			config.AuthMiddleware.RequireAdmin(),
			config.CategoryHandler.CreateCategory)
		categories.PUT("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.CategoryHandler.DeleteCategory)
	}
}
