package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	categoryusecases "aster/internal/application/category/usecases"
	dashboardusecases "aster/internal/application/dashboard/usecases"
	inquiryusecases "aster/internal/application/inquiry/usecases"
	knowledgeusecases "aster/internal/application/knowledge/usecases"
	"aster/internal/infrastructure/auth"
	"aster/internal/infrastructure/config"
	"aster/internal/infrastructure/email"
	"aster/internal/infrastructure/ratelimit"
	"aster/internal/infrastructure/repository"
	"aster/internal/infrastructure/storage"
	authhandlers "aster/internal/interfaces/http/handlers/auth"
	categoryhandlers "aster/internal/interfaces/http/handlers/category"
	dashboardhandlers "aster/internal/interfaces/http/handlers/dashboard"
	inquiryhandlers "aster/internal/interfaces/http/handlers/inquiry"
	knowledgehandlers "aster/internal/interfaces/http/handlers/knowledge"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/interfaces/http/routes"
	shareddb "aster/internal/shared/db"
	"aster/internal/shared/logger"
	"aster/internal/shared/markdown"
)

// Router wires repositories, use cases, and handlers onto a gin engine.
type Router struct {
	engine           *gin.Engine
	authHandler      *authhandlers.AuthHandler
	inquiryHandler   *inquiryhandlers.InquiryHandler
	categoryHandler  *categoryhandlers.CategoryHandler
	articleHandler   *knowledgehandlers.ArticleHandler
	dashboardHandler *dashboardhandlers.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      ratelimit.RateLimiter
	rateLimitConfig  ratelimit.RateLimitConfig
	logger           logger.Interface
}

// NewRouter builds the full dependency graph from the database connection
// and configuration.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	txMgr := shareddb.NewTransactionManager(db)
	inquiryRepo := repository.NewInquiryRepository(db, log)
	categoryRepo := repository.NewCategoryRepository(db, log)
	articleRepo := repository.NewArticleRepository(db, log)
	tagRepo := repository.NewTagRepository(db, log)
	users := repository.NewUserDirectory(db, log)

	blobs, err := storage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}

	var notifier email.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		notifier = email.NewNoopNotifier()
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		limiter = ratelimit.NewRedisRateLimiter(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	credentials := auth.NewGormCredentialVerifier(db, log)
	renderer := markdown.NewService()

	inquiryHandler := inquiryhandlers.NewInquiryHandler(
		inquiryusecases.NewCreateInquiryUseCase(inquiryRepo, log),
		inquiryusecases.NewUpdateInquiryUseCase(inquiryRepo, categoryRepo, users, txMgr, log),
		inquiryusecases.NewChangeStatusUseCase(inquiryRepo, txMgr, notifier, log),
		inquiryusecases.NewAssignInquiryUseCase(inquiryRepo, users, notifier, log),
		inquiryusecases.NewGetInquiryUseCase(inquiryRepo, users, log),
		inquiryusecases.NewListInquiriesUseCase(inquiryRepo, users, log),
		inquiryusecases.NewDeleteInquiryUseCase(inquiryRepo, blobs, log),
		inquiryusecases.NewAddResponseUseCase(inquiryRepo, log),
		inquiryusecases.NewAddAttachmentUseCase(inquiryRepo, blobs, log),
		inquiryusecases.NewGetTriageOptionsUseCase(tagRepo, users, log),
		log,
	)

	categoryHandler := categoryhandlers.NewCategoryHandler(
		categoryusecases.NewCreateCategoryUseCase(categoryRepo, log),
		categoryusecases.NewUpdateCategoryUseCase(categoryRepo, log),
		categoryusecases.NewDeleteCategoryUseCase(categoryRepo, log),
		categoryusecases.NewGetCategoryTreeUseCase(categoryRepo, log),
		categoryusecases.NewGetCategoryReferencesUseCase(categoryRepo, log),
		log,
	)

	articleHandler := knowledgehandlers.NewArticleHandler(
		knowledgeusecases.NewCreateArticleUseCase(articleRepo, categoryRepo, log),
		knowledgeusecases.NewUpdateArticleUseCase(articleRepo, categoryRepo, log),
		knowledgeusecases.NewViewArticleUseCase(articleRepo, users, renderer, log),
		knowledgeusecases.NewListArticlesUseCase(articleRepo, users, log),
		knowledgeusecases.NewDeleteArticleUseCase(articleRepo, log),
		log,
	)

	dashboardHandler := dashboardhandlers.NewDashboardHandler(
		dashboardusecases.NewGetDashboardSummaryUseCase(inquiryRepo, articleRepo, categoryRepo, users, log),
		log,
	)

	return &Router{
		engine:           engine,
		authHandler:      authhandlers.NewAuthHandler(credentials, jwtService, log),
		inquiryHandler:   inquiryHandler,
		categoryHandler:  categoryHandler,
		articleHandler:   articleHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:      limiter,
		rateLimitConfig: ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
		},
		logger: log,
	}, nil
}

// SetupRoutes installs the global middleware and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:     r.authHandler,
		AuthMiddleware:  r.authMiddleware,
		RateLimiter:     r.rateLimiter,
		RateLimitConfig: r.rateLimitConfig,
		Logger:          r.logger,
	})
	routes.SetupInquiryRoutes(r.engine, &routes.InquiryRouteConfig{
		InquiryHandler:  r.inquiryHandler,
		AuthMiddleware:  r.authMiddleware,
		RateLimiter:     r.rateLimiter,
		RateLimitConfig: r.rateLimitConfig,
		Logger:          r.logger,
	})
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupArticleRoutes(r.engine, &routes.ArticleRouteConfig{
		ArticleHandler: r.articleHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
