// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	SheetURL        string
	SheetFile       string
	DatabasePath    string
	GeminiAPIKey    string
	RefreshInterval time.Duration
	MockDays        int
	LogRetention    time.Duration
}

// Default values
const (
	defaultRefreshInterval = 5 * time.Minute
	defaultMockDays        = 30
	defaultLogRetention    = 90 * 24 * time.Hour
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		SheetURL:        getEnvString("SHEET_URL", ""),
		SheetFile:       getEnvString("SHEET_FILE", ""),
		DatabasePath:    getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		GeminiAPIKey:    getEnvString("GEMINI_API_KEY", ""),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", defaultRefreshInterval),
		MockDays:        getEnvInt("MOCK_DAYS", defaultMockDays),
		LogRetention:    getEnvDuration("LOG_RETENTION", defaultLogRetention),
	}

	if cfg.SheetURL == "" && cfg.SheetFile == "" {
		return nil, fmt.Errorf("SHEET_URL or SHEET_FILE is required (set via env or .env file)")
	}

	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HasRemoteSource reports whether a published-CSV endpoint is configured.
// A local SHEET_FILE takes precedence when both are set.
func (c *Config) HasRemoteSource() bool {
	return c.SheetFile == "" && c.SheetURL != ""
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "sales-dashboard", ".env"),
			filepath.Join(home, ".sales-dashboard", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "refresh.db"
	}
	return filepath.Join(home, ".config", "sales-dashboard", "refresh.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
