package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
)

// LoggingConfig holds configuration for the logging middleware.
type LoggingConfig struct {
	Output     io.Writer
	TimeFormat string
	SkipPaths  []string
}

// DefaultSkipPaths are health check endpoints left out of access logs.
var DefaultSkipPaths = []string{"/health", "/ping"}

// LoggingMiddleware returns a text access log middleware.
func LoggingMiddleware(config LoggingConfig) gin.HandlerFunc {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.TimeFormat == "" {
		config.TimeFormat = "2006/01/02 - 15:04:05"
	}

	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			requestID := ""
			if id := requestIDFromKeys(param.Keys); id != "" {
				requestID = " | ReqID: " + id
			}

			return fmt.Sprintf("[WEB] %v | %3d | %13v | %15s | %-7s %#v%s\n%s",
				param.TimeStamp.Format(config.TimeFormat),
				param.StatusCode,
				param.Latency,
				param.ClientIP,
				param.Method,
				param.Path,
				requestID,
				param.ErrorMessage,
			)
		},
		Output:    config.Output,
		SkipPaths: config.SkipPaths,
	})
}

// StructuredLoggingMiddleware writes one JSON object per request.
func StructuredLoggingMiddleware(output io.Writer, skipPaths ...string) gin.HandlerFunc {
	if output == nil {
		output = os.Stdout
	}

	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			rec := map[string]interface{}{
				"timestamp":  param.TimeStamp.Format("2006-01-02T15:04:05Z07:00"),
				"status":     param.StatusCode,
				"latency":    param.Latency.String(),
				"client_ip":  param.ClientIP,
				"method":     param.Method,
				"path":       param.Path,
				"request_id": requestIDFromKeys(param.Keys),
				"error":      param.ErrorMessage,
			}

			b, _ := json.Marshal(rec)
			return string(b) + "\n"
		},
		Output:    output,
		SkipPaths: skipPaths,
	})
}

func requestIDFromKeys(keys map[string]any) string {
	if keys == nil {
		return ""
	}
	if id, ok := keys[string(RequestIDKey)].(string); ok {
		return id
	}
	return ""
}
