// Package config holds runtime settings read from SCHOLAR_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Document store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all runtime configuration.
type Config struct {
	// SplashDelay is how long the splash screen stays up. Default: 4s.
	SplashDelay time.Duration

	// ProgressSteps and ProgressStepDelay shape the simulated loading bar
	// on the quiz screen. Defaults: 100 steps, 50ms apart.
	ProgressSteps     int
	ProgressStepDelay time.Duration

	// ToastDuration is how long success toasts stay visible. Default: 2s.
	ToastDuration time.Duration

	// DocumentBackend selects where quiz documents and profiles live.
	// Values: "sqlite", "redis".
	DocumentBackend string
	RedisURL        string

	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string // empty discards logs; the TUI owns the terminal
	Level string
}

// DefaultConfig returns a Config with the defaults above.
func DefaultConfig() Config {
	return Config{
		SplashDelay:       4 * time.Second,
		ProgressSteps:     100,
		ProgressStepDelay: 50 * time.Millisecond,
		ToastDuration:     2 * time.Second,
		DocumentBackend:   BackendSQLite,
		RedisURL:          "redis://localhost:6379/0",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from environment variables, falling back to
// defaults for unset values. Malformed values are errors.
func Load() (Config, error) {
	cfg := DefaultConfig()
	var err error

	if cfg.SplashDelay, err = envDuration("SCHOLAR_SPLASH_DELAY", cfg.SplashDelay); err != nil {
		return cfg, err
	}
	if cfg.ProgressSteps, err = envInt("SCHOLAR_PROGRESS_STEPS", cfg.ProgressSteps); err != nil {
		return cfg, err
	}
	if cfg.ProgressStepDelay, err = envDuration("SCHOLAR_PROGRESS_STEP_DELAY", cfg.ProgressStepDelay); err != nil {
		return cfg, err
	}
	if cfg.ToastDuration, err = envDuration("SCHOLAR_TOAST_DURATION", cfg.ToastDuration); err != nil {
		return cfg, err
	}

	if b := os.Getenv("SCHOLAR_DOCUMENT_BACKEND"); b != "" {
		cfg.DocumentBackend = strings.ToLower(b)
	}
	if u := os.Getenv("SCHOLAR_REDIS_URL"); u != "" {
		cfg.RedisURL = u
	}
	if f := os.Getenv("SCHOLAR_LOG_FILE"); f != "" {
		cfg.Log.File = f
	}
	if l := os.Getenv("SCHOLAR_LOG_LEVEL"); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}

	return cfg, nil
}

// Validate checks value ranges and the backend selection.
func (c Config) Validate() error {
	if c.SplashDelay < 0 {
		return fmt.Errorf("SCHOLAR_SPLASH_DELAY must not be negative, got %s", c.SplashDelay)
	}
	if c.ProgressSteps < 1 {
		return fmt.Errorf("SCHOLAR_PROGRESS_STEPS must be at least 1, got %d", c.ProgressSteps)
	}
	if c.ProgressStepDelay <= 0 {
		return fmt.Errorf("SCHOLAR_PROGRESS_STEP_DELAY must be positive, got %s", c.ProgressStepDelay)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("SCHOLAR_TOAST_DURATION must be positive, got %s", c.ToastDuration)
	}

	switch c.DocumentBackend {
	case BackendSQLite:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("SCHOLAR_REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown document backend: %q", c.DocumentBackend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	return nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}
