// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

// Package main is the entry point for the Kinolens server application.
//
// Kinolens is a self-hosted, read-only analytics API over a MongoDB
// sample_mflix-style database. It serves the query side of a movie
// dashboard: KPI summaries, rating trends by year, genre performance,
// discussion rankings and title search, all driven by one shared filter
// state (year range, genre set, minimum rating).
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog structured logging at the configured level
//  3. Database: Connect to MongoDB and verify with a bounded ping
//  4. HTTP Server: Chi-routed JSON API plus Prometheus /metrics
//
// The store handle is constructed once here and injected into the API
// layer; nothing else in the process opens connections.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (MONGO_URI, DB_NAME, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// MONGO_URI is the only required setting. A missing URI or an
// unreachable server is fatal at startup; the service never starts in a
// degraded half-connected state.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Disconnects from MongoDB
//
// # Example Usage
//
//	export MONGO_URI=mongodb://localhost:27017
//	export DB_NAME=sample_mflix
//	./kinolens
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kinolens/kinolens/internal/api"
	"github.com/kinolens/kinolens/internal/config"
	"github.com/kinolens/kinolens/internal/database"
	"github.com/kinolens/kinolens/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("database", cfg.Database.Name).
		Int("port", cfg.Server.Port).
		Msg("Starting Kinolens")

	// Connect to MongoDB; an unreachable store is fatal at startup
	db, err := database.New(context.Background(), &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Wire the API layer: handlers over the injected store, Chi router
	// with CORS and rate limiting from the server configuration
	handler := api.NewHandler(db, cfg)
	chiMw := api.NewChiMiddlewareFromConfig(
		cfg.Server.CORSOrigins,
		cfg.Server.RateLimitReqs,
		cfg.Server.RateLimitWindow,
		cfg.Server.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Run the server; serve errors land on errCh
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	// Wait for a shutdown signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	// Drain in-flight requests, then let the deferred Close disconnect
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
