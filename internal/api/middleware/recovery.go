package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	Logger *slog.Logger
	// PrintStack adds the goroutine stack to the panic log record.
	PrintStack bool
}

// RecoveryMiddleware turns panics into a sanitized 500 response.
func RecoveryMiddleware(config RecoveryConfig) gin.HandlerFunc {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := GetRequestID(c)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("panic", fmt.Sprint(recovered)),
		}
		if config.PrintStack {
			attrs = append(attrs, slog.String("stack", string(debug.Stack())))
		}
		logger.ErrorContext(c.Request.Context(), "panic recovered", attrs...)

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"type":       "INTERNAL_ERROR",
				"code":       "internal.panic",
				"message":    "An unexpected error occurred",
				"request_id": requestID,
			},
		})
	})
}

// DefaultRecoveryMiddleware returns a recovery middleware that logs stacks.
func DefaultRecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return RecoveryMiddleware(RecoveryConfig{
		Logger:     logger,
		PrintStack: true,
	})
}
