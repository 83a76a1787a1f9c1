package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brightweb/agency-api/internal/api/handler"
	"github.com/brightweb/agency-api/internal/api/middleware"
	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
	"github.com/brightweb/agency-api/internal/core/service"
	"github.com/brightweb/agency-api/internal/infrastructure/config"
	mongodb "github.com/brightweb/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/brightweb/agency-api/internal/infrastructure/db/redis"
)

type welcomeResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	tokenTTL time.Duration,
	db *mongo.Database,
	rdb *redis.Client,
	notifier ports.Notifier,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("agency"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	portfolioRepo := mongodb.NewPortfolioRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	catalogService := service.NewCatalogService(serviceRepo, log)
	portfolioService := service.NewPortfolioService(portfolioRepo, log)
	requestService := service.NewRequestService(
		requestRepo, serviceRepo, userRepo,
		notifier, redisdb.NewCompletionMarker(rdb), log,
	)
	contactService := service.NewContactService(contactRepo, notifier, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	requestHandler := handler.NewRequestHandler(requestService)
	contactHandler := handler.NewContactHandler(contactService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, welcomeResponse{
			Message:       "Welcome to API",
			Version:       "1.0.0",
			Documentation: "/api/docs",
		})
	})
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/portfolio", portfolioHandler.List)
	e.GET("/api/portfolio/:id", portfolioHandler.Get)
	e.GET("/api/services", catalogHandler.List)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Authenticated routes ---
	e.GET("/api/my-requests", requestHandler.ListMine, authRequired)
	e.POST("/api/service-requests", requestHandler.Submit, authRequired)

	// --- Admin routes ---
	e.POST("/api/portfolio", portfolioHandler.Create, authRequired, adminOnly)
	e.DELETE("/api/portfolio/:id", portfolioHandler.Delete, authRequired, adminOnly)
	e.POST("/api/services", catalogHandler.Create, authRequired, adminOnly)
	e.DELETE("/api/services/:id", catalogHandler.Delete, authRequired, adminOnly)
	e.PUT("/api/requests/:id/status", requestHandler.SetStatus, authRequired, adminOnly)
	e.GET("/api/admin/requests", requestHandler.ListAll, authRequired, adminOnly)
	e.GET("/api/admin/service-requests", requestHandler.ListAll, authRequired, adminOnly)
	e.PUT("/api/admin/requests/:id/status", requestHandler.SetStatusAdmin, authRequired, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
