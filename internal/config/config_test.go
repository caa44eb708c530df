package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 4*time.Second, cfg.SplashDelay)
	assert.Equal(t, 100, cfg.ProgressSteps)
	assert.Equal(t, 50*time.Millisecond, cfg.ProgressStepDelay)
	assert.Equal(t, BackendSQLite, cfg.DocumentBackend)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SCHOLAR_SPLASH_DELAY", "1s")
	t.Setenv("SCHOLAR_PROGRESS_STEPS", "20")
	t.Setenv("SCHOLAR_PROGRESS_STEP_DELAY", "10ms")
	t.Setenv("SCHOLAR_TOAST_DURATION", "3s")
	t.Setenv("SCHOLAR_DOCUMENT_BACKEND", "Redis")
	t.Setenv("SCHOLAR_REDIS_URL", "redis://cache:6379/2")
	t.Setenv("SCHOLAR_LOG_FILE", "/tmp/scholar.log")
	t.Setenv("SCHOLAR_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.SplashDelay)
	assert.Equal(t, 20, cfg.ProgressSteps)
	assert.Equal(t, 10*time.Millisecond, cfg.ProgressStepDelay)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
	assert.Equal(t, BackendRedis, cfg.DocumentBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.RedisURL)
	assert.Equal(t, "/tmp/scholar.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SCHOLAR_SPLASH_DELAY", "four seconds"},
		{"SCHOLAR_PROGRESS_STEPS", "many"},
		{"SCHOLAR_PROGRESS_STEP_DELAY", "50"},
		{"SCHOLAR_TOAST_DURATION", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative splash", func(c *Config) { c.SplashDelay = -time.Second }},
		{"zero steps", func(c *Config) { c.ProgressSteps = 0 }},
		{"zero step delay", func(c *Config) { c.ProgressStepDelay = 0 }},
		{"zero toast", func(c *Config) { c.ToastDuration = 0 }},
		{"unknown backend", func(c *Config) { c.DocumentBackend = "firestore" }},
		{"redis without url", func(c *Config) { c.DocumentBackend = BackendRedis; c.RedisURL = "" }},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
