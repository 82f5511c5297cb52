// Package main provides the entry point for the LinkSight card server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"linksight/internal/api"
	"linksight/internal/api/middleware"
	"linksight/internal/catalog"
	"linksight/internal/config"
	"linksight/internal/matcher"
)

const (
	rateLimitCacheCapacity = 10000
	redisKeyPrefix         = "linksight:ratelimit"
)

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	bootLogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	if err := config.AutoLoadEnv(".", bootLogger); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.GetSlogLevel()}))
	slog.SetDefault(logger)

	repo, err := catalog.LoadFile(cfg.GetCatalogPath())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	addressMatcher, err := setupMatcher(cfg, logger)
	if err != nil {
		return err
	}

	limiter, closeLimiter := setupLimiter(ctx, cfg, logger)
	defer closeLimiter()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.RouterDeps{
		Config:  cfg,
		Catalog: repo,
		Logger:  logger,
		Limiter: limiter,
		Matcher: addressMatcher,
	})

	server := &http.Server{
		Addr:         ":" + cfg.GetServerPort(),
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.GetEnvironment(), "log_level", cfg.GetLogLevel())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
		logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// setupMatcher loads the reference locations when REFERENCE_PATH is set.
// A nil matcher leaves address matching unrouted.
func setupMatcher(cfg *config.AppConfig, logger *slog.Logger) (*matcher.Matcher, error) {
	path := cfg.GetReferencePath()
	if path == "" {
		logger.Info("address matching disabled, REFERENCE_PATH not set")
		return nil, nil
	}

	reference, err := matcher.LoadReferenceFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference locations: %w", err)
	}
	logger.Info("reference locations loaded", "path", path, "locations", len(reference))

	return matcher.New(reference, matcher.DefaultInterlevels), nil
}

// setupLimiter picks the Redis limiter when REDIS_ADDR is set and falls back
// to the in-process one otherwise, including when Redis is unreachable.
func setupLimiter(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (middleware.Limiter, func()) {
	if !cfg.GetRateLimitEnabled() {
		return nil, func() {}
	}

	memory := middleware.NewMemoryLimiter(cfg.GetRateLimitRequestsPerMinute(), rateLimitCacheCapacity)
	if cfg.GetRedisAddr() == "" {
		return memory, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.GetRedisPassword(),
		DB:       cfg.GetRedisDB(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory rate limiter", "addr", cfg.GetRedisAddr(), "error", err)
		_ = client.Close()
		return memory, func() {}
	}

	return middleware.NewRedisLimiter(client, redisKeyPrefix, cfg.GetRateLimitRequestsPerMinute()), func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
}
