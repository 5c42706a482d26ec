// Package main provides logicd, the JsonLogic evaluation daemon.
//
// Application Startup Flow:
//
//  1. Load configuration from environment variables (config.Load)
//  2. Initialize Prometheus metrics registry (telemetry.Init)
//  3. Start API server (POST /v1/apply, GET /healthz)
//  4. Start metrics/pprof server (/metrics, /debug/pprof)
//  5. Wait for SIGINT/SIGTERM for graceful shutdown
//
// Both servers shut down gracefully with a 5-second timeout to allow
// in-flight evaluations to complete.
package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rulekit/jsonlogic/internal/api"
	"github.com/rulekit/jsonlogic/internal/config"
	"github.com/rulekit/jsonlogic/internal/telemetry"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	logger = logger.Level(cfg.Level())

	telemetry.Init()

	srv := api.NewServer(api.Options{
		Strict:       cfg.StrictParsing,
		RatePerIP:    cfg.RateLimitPerIP,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       logger,
	})

	apiSrv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srv.Router(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := apiSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("api server")
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	// forward /debug/pprof/* to DefaultServeMux where pprof registered
	mux.HandleFunc("/debug/pprof/", http.DefaultServeMux.ServeHTTP)

	metricsSrv := &http.Server{
		Addr:         cfg.MetricsAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("metrics/pprof server listening")
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("metrics server")
		}
	}()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownSignal

	logger.Info().Msg("shutdown signal received, stopping servers")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("api server shutdown")
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("metrics server shutdown")
	}

	logger.Info().Msg("servers stopped")
}
