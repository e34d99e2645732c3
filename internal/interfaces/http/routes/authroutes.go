package routes

import (
	"github.com/gin-gonic/gin"

	"aster/internal/infrastructure/ratelimit"
	authhandlers "aster/internal/interfaces/http/handlers/auth"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/logger"
)

type AuthRouteConfig struct {
	AuthHandler     *authhandlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     ratelimit.RateLimiter
	RateLimitConfig ratelimit.RateLimitConfig
	Logger          logger.Interface
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	loginLimit := middleware.RateLimit(config.RateLimiter, config.RateLimitConfig, config.Logger)

	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", loginLimit, config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.Refresh)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
	}
}
