// Package config provides application configuration management.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported environments.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// ServerConfig interface for server-specific configuration.
type ServerConfig interface {
	GetServerPort() string
	GetReadTimeout() time.Duration
	GetWriteTimeout() time.Duration
	GetIdleTimeout() time.Duration
	GetShutdownTimeout() time.Duration
}

// CatalogConfig interface for dataset catalog configuration.
type CatalogConfig interface {
	GetCatalogPath() string
	GetAssetsDir() string
	GetReferencePath() string
}

// RateLimitConfig interface for request rate limiting configuration.
type RateLimitConfig interface {
	GetRateLimitEnabled() bool
	GetRateLimitRequestsPerMinute() int
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

// AppConfig implements all configuration interfaces.
type AppConfig struct {
	serverPort      string
	environment     string
	logLevel        string
	catalogPath     string
	assetsDir       string
	referencePath   string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	allowedOrigins  []string

	rateLimitEnabled bool
	rateLimitRPM     int
	redisAddr        string
	redisPassword    string
	redisDB          int
}

// NewConfig creates a new configuration instance with default values
// and overrides from environment variables.
func NewConfig() *AppConfig {
	return &AppConfig{
		serverPort:      getEnvString("SERVER_PORT", "8080"),
		environment:     getEnvString("ENVIRONMENT", EnvDevelopment),
		logLevel:        getEnvString("LOG_LEVEL", "info"),
		catalogPath:     getEnvString("CATALOG_PATH", "data/datasets.yaml"),
		assetsDir:       getEnvString("ASSETS_DIR", ""),
		referencePath:   getEnvString("REFERENCE_PATH", ""),
		readTimeout:     getEnvDuration("READ_TIMEOUT", "15s"),
		writeTimeout:    getEnvDuration("WRITE_TIMEOUT", "15s"),
		idleTimeout:     getEnvDuration("IDLE_TIMEOUT", "60s"),
		shutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", "30s"),
		allowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS"),

		rateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		rateLimitRPM:     getEnvInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 120),
		redisAddr:        getEnvString("REDIS_ADDR", ""),
		redisPassword:    getEnvString("REDIS_PASSWORD", ""),
		redisDB:          getEnvInt("REDIS_DB", 0),
	}
}

// GetServerPort returns the server port configuration.
func (c *AppConfig) GetServerPort() string {
	return c.serverPort
}

// GetEnvironment returns the application environment configuration.
func (c *AppConfig) GetEnvironment() string {
	return c.environment
}

// IsProduction returns true if the application is running in production environment.
func (c *AppConfig) IsProduction() bool {
	return c.environment == EnvProduction
}

// GetLogLevel returns the log level configuration.
func (c *AppConfig) GetLogLevel() string {
	return c.logLevel
}

// GetSlogLevel maps the configured log level onto a slog level.
// Unknown values fall back to info.
func (c *AppConfig) GetSlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetCatalogPath returns the path of the YAML dataset catalog.
func (c *AppConfig) GetCatalogPath() string {
	return c.catalogPath
}

// GetAssetsDir returns the directory served under /static/img, if any.
func (c *AppConfig) GetAssetsDir() string {
	return c.assetsDir
}

// GetReferencePath returns the reference locations CSV used for address
// matching. Empty disables matching.
func (c *AppConfig) GetReferencePath() string {
	return c.referencePath
}

// GetReadTimeout returns the server read timeout configuration.
func (c *AppConfig) GetReadTimeout() time.Duration {
	return c.readTimeout
}

// GetWriteTimeout returns the server write timeout configuration.
func (c *AppConfig) GetWriteTimeout() time.Duration {
	return c.writeTimeout
}

// GetIdleTimeout returns the server idle timeout configuration.
func (c *AppConfig) GetIdleTimeout() time.Duration {
	return c.idleTimeout
}

// GetShutdownTimeout returns how long graceful shutdown may take.
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.shutdownTimeout
}

// GetAllowedOrigins returns the origins allowed to embed card fragments.
// An empty list allows any origin.
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.allowedOrigins
}

// GetRateLimitEnabled reports whether per-client rate limiting is on.
func (c *AppConfig) GetRateLimitEnabled() bool {
	return c.rateLimitEnabled
}

// GetRateLimitRequestsPerMinute returns the per-client request budget.
func (c *AppConfig) GetRateLimitRequestsPerMinute() int {
	return c.rateLimitRPM
}

// GetRedisAddr returns the Redis address; empty means in-memory limiting.
func (c *AppConfig) GetRedisAddr() string {
	return c.redisAddr
}

// GetRedisPassword returns the Redis password.
func (c *AppConfig) GetRedisPassword() string {
	return c.redisPassword
}

// GetRedisDB returns the Redis database number.
func (c *AppConfig) GetRedisDB() int {
	return c.redisDB
}

// Validate checks if the configuration is valid.
func (c *AppConfig) Validate() error {
	port, err := strconv.Atoi(c.serverPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("server port must be a number between 1 and 65535, got %q", c.serverPort)
	}

	switch c.environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("environment must be one of: development, staging, production")
	}

	if strings.TrimSpace(c.catalogPath) == "" {
		return fmt.Errorf("catalog path cannot be empty")
	}

	if c.readTimeout <= 0 || c.writeTimeout <= 0 || c.idleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.rateLimitEnabled && c.rateLimitRPM <= 0 {
		return fmt.Errorf("rate limit must allow at least one request per minute")
	}

	return nil
}

// Helper functions for environment variable parsing.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	if duration, err := time.ParseDuration(defaultValue); err == nil {
		return duration
	}
	return time.Second
}
