package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StrictParsing)
	assert.Equal(t, 300, cfg.RateLimitPerIP)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOGICD_HTTP_ADDR", ":7070")
	t.Setenv("LOGICD_LOG_LEVEL", "DEBUG")
	t.Setenv("LOGICD_STRICT", "true")
	t.Setenv("LOGICD_RATE_LIMIT_PER_IP", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictParsing)
	assert.Equal(t, 50, cfg.RateLimitPerIP)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "LOGICD_LOG_LEVEL", value: "shout"},
		{name: "zero rate limit", key: "LOGICD_RATE_LIMIT_PER_IP", value: "0"},
		{name: "zero body cap", key: "LOGICD_MAX_BODY_BYTES", value: "0"},
		{name: "addr clash", key: "LOGICD_METRICS_ADDR", value: ":8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
