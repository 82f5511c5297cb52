package api

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"linksight/internal/api/middleware"
	"linksight/internal/catalog"
	"linksight/internal/config"
	"linksight/internal/matcher"
)

// RouterDeps collects what NewRouter wires together.
type RouterDeps struct {
	Config  *config.AppConfig
	Catalog catalog.Repository
	Logger  *slog.Logger
	// Limiter enables per-client rate limiting when set.
	Limiter middleware.Limiter
	// Matcher serves address matching for uploads when set.
	Matcher *matcher.Matcher
}

// NewRouter configures the Gin engine with middleware and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	if deps.Config.IsProduction() {
		router.Use(middleware.StructuredLoggingMiddleware(os.Stdout, middleware.DefaultSkipPaths...))
	} else {
		router.Use(middleware.LoggingMiddleware(middleware.LoggingConfig{SkipPaths: middleware.DefaultSkipPaths}))
	}
	router.Use(middleware.DefaultRecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(middleware.CORSConfig{AllowedOrigins: deps.Config.GetAllowedOrigins()}))

	NewHealthHandler(deps.Catalog, deps.Config.GetEnvironment()).RegisterRoutes(router)

	// Health checks stay outside the rate limit.
	views := router.Group("")
	if deps.Limiter != nil {
		views.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			Limiter: deps.Limiter,
			Logger:  logger,
		}))
	}
	sanitizer := NewErrorSanitizer(logger)
	NewDatasetHandler(deps.Catalog, sanitizer).RegisterRoutes(views)
	NewUploadHandler(deps.Matcher, sanitizer).RegisterRoutes(views)

	if dir := deps.Config.GetAssetsDir(); dir != "" {
		views.Static("/static/img", dir)
	}

	return router
}
