// Package config provides daemon configuration loading from environment
// variables and .env files. It uses viper for flexible configuration
// management with sensible defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the evaluation daemon configuration loaded from environment
// variables or a .env file. Environment variables take precedence.
type Config struct {
	HTTPAddr       string // API server bind address (e.g., ":8080")
	MetricsAddr    string // Metrics/pprof server bind address
	LogLevel       string // zerolog level name (trace, debug, info, ...)
	StrictParsing  bool   // Reject unknown operators instead of treating them as literals
	RateLimitPerIP int    // Apply-endpoint rate limit per IP per minute
	MaxBodyBytes   int64  // Request body cap for the apply endpoint
}

// Load reads configuration from environment variables and .env (if present).
// Returns a Config with all values populated from env or defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env") // Optional; silently ignored if file doesn't exist
	_ = v.ReadInConfig()    // Ignore error - .env is optional
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		HTTPAddr:       strings.TrimSpace(v.GetString("LOGICD_HTTP_ADDR")),
		MetricsAddr:    strings.TrimSpace(v.GetString("LOGICD_METRICS_ADDR")),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("LOGICD_LOG_LEVEL"))),
		StrictParsing:  v.GetBool("LOGICD_STRICT"),
		RateLimitPerIP: v.GetInt("LOGICD_RATE_LIMIT_PER_IP"),
		MaxBodyBytes:   v.GetInt64("LOGICD_MAX_BODY_BYTES"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOGICD_HTTP_ADDR", ":8080")
	v.SetDefault("LOGICD_METRICS_ADDR", ":9090")
	v.SetDefault("LOGICD_LOG_LEVEL", "info")
	v.SetDefault("LOGICD_STRICT", false)
	v.SetDefault("LOGICD_RATE_LIMIT_PER_IP", 300)
	v.SetDefault("LOGICD_MAX_BODY_BYTES", 1<<20)
}

func validate(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("LOGICD_HTTP_ADDR must not be empty")
	}
	if cfg.MetricsAddr == "" {
		return fmt.Errorf("LOGICD_METRICS_ADDR must not be empty")
	}
	if cfg.HTTPAddr == cfg.MetricsAddr {
		return fmt.Errorf("LOGICD_HTTP_ADDR and LOGICD_METRICS_ADDR must differ")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("unsupported LOGICD_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if cfg.RateLimitPerIP <= 0 {
		return fmt.Errorf("LOGICD_RATE_LIMIT_PER_IP must be positive, got %d", cfg.RateLimitPerIP)
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("LOGICD_MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return nil
}

// Level parses the configured log level. Only valid after a successful Load.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
