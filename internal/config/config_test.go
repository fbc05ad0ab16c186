package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8001", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BACKEND_URL", "http://flood-api:8000")
	t.Setenv("BACKEND_TIMEOUT", "30s")
	t.Setenv("NOTIFICATION_TTL", "10s")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://flood-api:8000", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 10*time.Second, cfg.NotificationTTL)
}

func TestLoadConfig_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://flood-api:8000/")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://flood-api:8000", cfg.BackendURL)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
}
