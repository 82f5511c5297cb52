package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"linksight/internal/catalog"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	catalog     catalog.Repository
	environment string
	startedAt   time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(repo catalog.Repository, environment string) *HealthHandler {
	return &HealthHandler{
		catalog:     repo,
		environment: environment,
		startedAt:   time.Now(),
	}
}

// RegisterRoutes registers health check routes.
func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ping", PingHandler)
	router.GET("/health", h.Readiness)
	router.GET("/health/live", h.Liveness)
	router.GET("/health/ready", h.Readiness)
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "alive",
		"version":     Version,
		"environment": h.environment,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Readiness reports whether the catalog can be read.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	datasets, err := h.catalog.List(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"version": Version,
			"checks":  gin.H{"catalog": "unavailable"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
		"checks": gin.H{
			"catalog":  "ok",
			"datasets": len(datasets),
		},
	})
}

// PingHandler provides a simple ping endpoint
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"time":    time.Now().Unix(),
	})
}
