package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, int64(32<<20), cfg.MaxBodyBytes)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.Development())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("HTTP_WRITE_TIMEOUT", "5s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.Development())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveBodyLimit(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "0")
	_, err := Load()
	assert.Error(t, err)
}
