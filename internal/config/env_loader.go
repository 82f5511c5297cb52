package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvLoader loads KEY=VALUE pairs from .env files into the process
// environment. Variables already set in the environment always win.
type EnvLoader struct {
	loaded  map[string]string
	baseDir string
	logger  *slog.Logger
}

// NewEnvLoader creates a new environment loader.
func NewEnvLoader(baseDir string, logger *slog.Logger) *EnvLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnvLoader{
		baseDir: baseDir,
		loaded:  make(map[string]string),
		logger:  logger,
	}
}

// envFiles lists candidate files in priority order, last one wins.
func envFiles(environment string) []string {
	return []string{
		".env.defaults",
		fmt.Sprintf(".env.%s", environment),
		".env.local",
		".env",
	}
}

// LoadEnvFiles loads every present .env file for the environment and exports
// the merged values. Missing files are skipped.
func (l *EnvLoader) LoadEnvFiles(environment string) error {
	for _, name := range envFiles(environment) {
		path := filepath.Join(l.baseDir, name)
		if err := l.loadEnvFile(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
		l.logger.Debug("loaded env file", slog.String("path", path))
	}

	for key, value := range l.loaded {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

func (l *EnvLoader) loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	// viper lowercases keys; environment variables are conventionally upper case.
	for _, key := range v.AllKeys() {
		l.loaded[strings.ToUpper(key)] = os.ExpandEnv(v.GetString(key))
	}
	return nil
}

// GetLoadedVars returns a copy of all loaded variables.
func (l *EnvLoader) GetLoadedVars() map[string]string {
	result := make(map[string]string, len(l.loaded))
	for k, v := range l.loaded {
		result[k] = v
	}
	return result
}

// AutoLoadEnv loads env files for the environment named by ENVIRONMENT.
func AutoLoadEnv(baseDir string, logger *slog.Logger) error {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = EnvDevelopment
	}

	loader := NewEnvLoader(baseDir, logger)
	if err := loader.LoadEnvFiles(env); err != nil {
		return err
	}

	// Values may hold secrets such as REDIS_PASSWORD; only names are logged.
	if vars := loader.GetLoadedVars(); len(vars) > 0 {
		loader.logger.Info("env files applied",
			slog.String("environment", env),
			slog.Any("keys", slices.Sorted(maps.Keys(vars))),
		)
	}
	return nil
}
