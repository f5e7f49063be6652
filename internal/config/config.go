package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ngmaloney/drought-terminal/internal/database"
	"github.com/ngmaloney/drought-terminal/internal/horizon"
)

// Config holds all application settings, populated from environment variables
// (optionally seeded from a .env file). Values are fixed after startup.
type Config struct {
	BackendURL    string
	ReferenceDate time.Time
	DBPath        string
	LogFile       string
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from the environment, applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	refStr := envOrDefault("REFERENCE_DATE", "2021-03-01")
	ref, err := horizon.ParseDate(refStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFERENCE_DATE %q: %w", refStr, err)
	}

	cfg := &Config{
		BackendURL:    strings.TrimRight(envOrDefault("BACKEND_URL", "http://localhost:8000"), "/"),
		ReferenceDate: ref,
		DBPath:        envOrDefault("DB_PATH", database.DBPath()),
		LogFile:       os.Getenv("LOG_FILE"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.BackendURL == "" {
		return nil, errors.New("BACKEND_URL is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
