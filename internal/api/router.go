package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vovzone/designer-platform/internal/api/handler"
	"github.com/vovzone/designer-platform/internal/api/middleware"
	"github.com/vovzone/designer-platform/internal/core/domain"
	"github.com/vovzone/designer-platform/internal/core/service"
	"github.com/vovzone/designer-platform/internal/infrastructure/config"
	"github.com/vovzone/designer-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/vovzone/designer-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vovzone"))

	// --- Dependencies ---
	repo := postgres.NewRepository(pool)
	sessions := redisdb.NewSessionStore(rdb)
	authService := service.NewAuthService(repo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	appService := service.NewApplicationService(repo, repo, log)

	authHandler := handler.NewAuthHandler(authService, appService)
	adminHandler := handler.NewAdminHandler(appService)
	designerHandler := handler.NewDesignerHandler(authService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/profile", authHandler.Profile, authMiddleware)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Admin routes ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/applications/pending", adminHandler.ListPending)
	admin.POST("/applications/:userId/approve", adminHandler.Approve)
	admin.POST("/applications/:userId/reject", adminHandler.Reject)

	// --- Designer routes ---
	designer := e.Group("/designer", authMiddleware, middleware.RBAC(domain.RoleDesigner))
	designer.GET("/dashboard", designerHandler.Dashboard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
