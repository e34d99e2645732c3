package routes

import (
	"github.com/gin-gonic/gin"

	knowledgehandlers "aster/internal/interfaces/http/handlers/knowledge"
	"aster/internal/interfaces/http/middleware"
)

type ArticleRouteConfig struct {
	ArticleHandler *knowledgehandlers.ArticleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupArticleRoutes(engine *gin.Engine, config *ArticleRouteConfig) {
	articles := engine.Group("/api/articles")
	{
		// Reads take optional auth; drafts stay hidden unless the viewer is staff.
		articles.GET("",
			config.AuthMiddleware.OptionalAuth(),
			config.ArticleHandler.ListArticles)
		articles.GET("/:id",
			config.AuthMiddleware.OptionalAuth(),
			config.ArticleHandler.ViewArticle)

		articles.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireStaff(),
			config.ArticleHandler.CreateArticle)
		articles.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireStaff(),
			config.ArticleHandler.UpdateArticle)
		articles.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireAdmin(),
			config.ArticleHandler.DeleteArticle)
	}
}
