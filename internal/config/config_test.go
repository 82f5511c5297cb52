package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "LOG_LEVEL", "CATALOG_PATH", "ASSETS_DIR", "REFERENCE_PATH", "READ_TIMEOUT",
		"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS_PER_MINUTE", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.GetServerPort())
	assert.Equal(t, EnvDevelopment, cfg.GetEnvironment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "data/datasets.yaml", cfg.GetCatalogPath())
	assert.Empty(t, cfg.GetAssetsDir())
	assert.Empty(t, cfg.GetReferencePath())
	assert.Equal(t, 15*time.Second, cfg.GetReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.GetShutdownTimeout())
	assert.Equal(t, slog.LevelInfo, cfg.GetSlogLevel())
	assert.Empty(t, cfg.GetAllowedOrigins())
	assert.True(t, cfg.GetRateLimitEnabled())
	assert.Equal(t, 120, cfg.GetRateLimitRequestsPerMinute())
	assert.Empty(t, cfg.GetRedisAddr())
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", EnvProduction)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/etc/linksight/datasets.yaml")
	t.Setenv("REFERENCE_PATH", "data/psgc_reference.csv")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := NewConfig()

	assert.Equal(t, "9090", cfg.GetServerPort())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.GetSlogLevel())
	assert.Equal(t, "/etc/linksight/datasets.yaml", cfg.GetCatalogPath())
	assert.Equal(t, "data/psgc_reference.csv", cfg.GetReferencePath())
	assert.Equal(t, 5*time.Second, cfg.GetReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.GetWriteTimeout(), "invalid durations fall back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetAllowedOrigins())
	assert.False(t, cfg.GetRateLimitEnabled())
	assert.Equal(t, "redis:6379", cfg.GetRedisAddr())
	assert.Equal(t, 2, cfg.GetRedisDB())
}

func TestAppConfig_Validate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			serverPort:   "8080",
			environment:  EnvDevelopment,
			catalogPath:  "data/datasets.yaml",
			readTimeout:  time.Second,
			writeTimeout: time.Second,
			idleTimeout:  time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{name: "non numeric port", mutate: func(c *AppConfig) { c.serverPort = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *AppConfig) { c.serverPort = "70000" }, wantErr: true},
		{name: "unknown environment", mutate: func(c *AppConfig) { c.environment = "qa" }, wantErr: true},
		{name: "blank catalog", mutate: func(c *AppConfig) { c.catalogPath = " " }, wantErr: true},
		{name: "zero timeout", mutate: func(c *AppConfig) { c.idleTimeout = 0 }, wantErr: true},
		{name: "empty rate limit", mutate: func(c *AppConfig) { c.rateLimitEnabled = true }, wantErr: true},
		{name: "disabled rate limit", mutate: func(c *AppConfig) { c.rateLimitEnabled = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestGetSlogLevel_Unknown(t *testing.T) {
	cfg := &AppConfig{logLevel: "chatty"}
	assert.Equal(t, slog.LevelInfo, cfg.GetSlogLevel())
}

func TestEnvLoader_LoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.defaults"), []byte("LINKSIGHT_TEST_PORT=1111\nLINKSIGHT_TEST_LEVEL=info\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), []byte("LINKSIGHT_TEST_PORT=2222\n"), 0600))

	t.Setenv("LINKSIGHT_TEST_LEVEL", "warn")
	t.Setenv("LINKSIGHT_TEST_PORT", "")
	require.NoError(t, os.Unsetenv("LINKSIGHT_TEST_PORT"))

	loader := NewEnvLoader(dir, nil)
	require.NoError(t, loader.LoadEnvFiles(EnvStaging))

	loaded := loader.GetLoadedVars()
	assert.Equal(t, "2222", loaded["LINKSIGHT_TEST_PORT"], "later files override earlier ones")
	assert.Equal(t, "2222", os.Getenv("LINKSIGHT_TEST_PORT"))
	assert.Equal(t, "warn", os.Getenv("LINKSIGHT_TEST_LEVEL"), "existing environment wins")
}

func TestEnvLoader_NoFiles(t *testing.T) {
	loader := NewEnvLoader(t.TempDir(), nil)
	require.NoError(t, loader.LoadEnvFiles(EnvDevelopment))
	assert.Empty(t, loader.GetLoadedVars())
}

func TestAutoLoadEnv_LogsKeysOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LINKSIGHT_TEST_SECRET=hunter2\n"), 0600))

	t.Setenv("ENVIRONMENT", EnvDevelopment)
	t.Setenv("LINKSIGHT_TEST_SECRET", "")
	require.NoError(t, os.Unsetenv("LINKSIGHT_TEST_SECRET"))

	var logs bytes.Buffer
	require.NoError(t, AutoLoadEnv(dir, slog.New(slog.NewJSONHandler(&logs, nil))))

	assert.Equal(t, "hunter2", os.Getenv("LINKSIGHT_TEST_SECRET"))
	assert.Contains(t, logs.String(), "LINKSIGHT_TEST_SECRET")
	assert.NotContains(t, logs.String(), "hunter2")
}
