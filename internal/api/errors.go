package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linksight/internal/api/middleware"
	"linksight/internal/domain"
)

// CorrelationIDHeader carries the id that ties an error response to its log record.
const CorrelationIDHeader = "X-Correlation-ID"

// ErrorSanitizer provides safe error handling that prevents information disclosure
type ErrorSanitizer struct {
	logger *slog.Logger
}

// NewErrorSanitizer creates a new error sanitizer with structured logging
func NewErrorSanitizer(logger *slog.Logger) *ErrorSanitizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorSanitizer{logger: logger}
}

// SanitizedErrorResponse logs err in full and writes a client-safe JSON error.
func (s *ErrorSanitizer) SanitizedErrorResponse(c *gin.Context, err error) {
	correlationID := s.getOrCreateCorrelationID(c)

	var domainErr *domain.Error
	isDomainError := errors.As(err, &domainErr)

	s.logError(c, err, correlationID, domainErr)

	statusCode, response := s.sanitizeErrorForClient(domainErr, isDomainError, correlationID)
	c.AbortWithStatusJSON(statusCode, response)
}

func (s *ErrorSanitizer) getOrCreateCorrelationID(c *gin.Context) string {
	if id := c.GetString("correlation_id"); id != "" {
		return id
	}

	id := c.GetHeader(CorrelationIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set("correlation_id", id)
	c.Header(CorrelationIDHeader, id)
	return id
}

func (s *ErrorSanitizer) logError(c *gin.Context, err error, correlationID string, domainErr *domain.Error) {
	attrs := []any{
		slog.String("correlation_id", correlationID),
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("remote_addr", c.ClientIP()),
	}

	if domainErr == nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.ErrorContext(c.Request.Context(), "Unexpected system error occurred", attrs...)
		return
	}

	attrs = append(attrs,
		slog.String("error_kind", string(domainErr.Kind())),
		slog.String("error_area", domainErr.Code.Area()),
		slog.String("error_code", string(domainErr.Code)),
		slog.String("error_message", domainErr.Message),
	)
	if domainErr.Field != "" {
		attrs = append(attrs, slog.String("error_field", domainErr.Field))
	}
	if domainErr.Cause != nil {
		attrs = append(attrs, slog.String("underlying_error", domainErr.Cause.Error()))
	}
	for key, value := range domainErr.Details {
		attrs = append(attrs, slog.Any("detail_"+key, value))
	}

	// Client mistakes are expected traffic; only server faults are errors.
	if domainErr.Kind() == domain.KindInternal {
		s.logger.ErrorContext(c.Request.Context(), "Domain error occurred", attrs...)
		return
	}
	s.logger.InfoContext(c.Request.Context(), "Request rejected", attrs...)
}

func (s *ErrorSanitizer) sanitizeErrorForClient(domainErr *domain.Error, isDomainError bool, correlationID string) (int, gin.H) {
	if !isDomainError {
		return http.StatusInternalServerError, gin.H{
			"success":        false,
			"correlation_id": correlationID,
			"error": gin.H{
				"type":    string(domain.KindInternal),
				"code":    string(domain.CodeUnexpected),
				"message": "An unexpected error occurred. Please try again later.",
			},
		}
	}

	kind := domainErr.Kind()
	errorBody := gin.H{
		"type": string(kind),
		"code": string(domainErr.Code),
	}

	switch kind {
	case domain.KindValidation:
		errorBody["message"] = domainErr.Message
		if domainErr.Field != "" {
			errorBody["field"] = domainErr.Field
		}
	case domain.KindNotFound:
		errorBody["message"] = "Requested resource not found"
	case domain.KindConflict:
		errorBody["message"] = "Resource conflict occurred"
	default:
		errorBody["message"] = "An error occurred while processing your request"
	}

	return statusCodeForKind(kind), gin.H{
		"success":        false,
		"correlation_id": correlationID,
		"error":          errorBody,
	}
}

func statusCodeForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
