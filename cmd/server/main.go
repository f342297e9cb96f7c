// Package main is the entry point for the floorspace metadata API server.
// Model snapshots are posted by editor clients; nothing is persisted.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"floorspace/internal/config"
	v1 "floorspace/internal/infrastructure/http/v1"
	"floorspace/internal/infrastructure/metrics"
	"floorspace/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting floorspace server", "env", cfg.Env)

	// --- Metadata Registry ---
	metadataRegistry := setupMetadataRegistry(log)

	// --- Metrics ---
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		log.Info("metrics enabled at /metrics")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:           log,
		MetadataRegistry: metadataRegistry,
		Metrics:          m,
		MaxBodyBytes:     cfg.MaxBodyBytes,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", cfg.Port, "max_body_bytes", cfg.MaxBodyBytes)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
