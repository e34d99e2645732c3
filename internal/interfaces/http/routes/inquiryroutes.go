package routes

import (
	"github.com/gin-gonic/gin"

	"aster/internal/infrastructure/ratelimit"
	inquiryhandlers "aster/internal/interfaces/http/handlers/inquiry"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/logger"
)

type InquiryRouteConfig struct {
	InquiryHandler  *inquiryhandlers.InquiryHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     ratelimit.RateLimiter
	RateLimitConfig ratelimit.RateLimitConfig
	Logger          logger.Interface
}

func SetupInquiryRoutes(engine *gin.Engine, config *InquiryRouteConfig) {
	inlineLimit := middleware.RateLimit(config.RateLimiter, config.RateLimitConfig, config.Logger)

	inquiries := engine.Group("/api/inquiries")
	inquiries.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		inquiries.POST("",
			config.InquiryHandler.CreateInquiry)
		inquiries.GET("",
			config.InquiryHandler.ListInquiries)

		inquiries.GET("/options",
			config.AuthMiddleware.RequireStaff(),
			config.InquiryHandler.GetTriageOptions)

		// Inline-edit endpoints (must come BEFORE /:id to avoid conflicts)
		inquiries.POST("/:id/status",
			config.AuthMiddleware.RequireStaff(),
			inlineLimit,
			config.InquiryHandler.ChangeStatus)
		inquiries.POST("/:id/assign",
			config.AuthMiddleware.RequireStaff(),
			inlineLimit,
			config.InquiryHandler.AssignInquiry)

		inquiries.POST("/:id/responses",
			config.AuthMiddleware.RequireStaff(),
			config.InquiryHandler.AddResponse)
		inquiries.POST("/:id/attachments",
			config.InquiryHandler.AddAttachment)

		// Generic parameterized routes (must come LAST)
		inquiries.GET("/:id",
			config.InquiryHandler.GetInquiry)
		inquiries.PUT("/:id",
			config.AuthMiddleware.RequireStaff(),
			config.InquiryHandler.UpdateInquiry)
		inquiries.DELETE("/:id",
			config.AuthMiddleware.RequireAdmin(),
			config.InquiryHandler.DeleteInquiry)
	}
}
