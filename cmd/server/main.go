// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package main is the entry point for the Reelmood server application.
//
// Reelmood is a mood-based movie discovery service backed by TMDB. Clients
// submit how they feel and the server answers with a ranked, deduplicated
// list of movies that fit that mood, blending genre-targeted discovery with
// trending titles.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. TMDB client: Rate-limited HTTP client wrapped in a circuit breaker
//  3. Recommendation engine: Mood resolution, concurrent fetch, merge, rank
//  4. HTTP layer: Chi router with CORS, rate limiting, and Prometheus metrics
//  5. Supervisor tree: Suture-managed HTTP server with graceful shutdown
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (TMDB_API_KEY, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// The only required setting is TMDB_API_KEY.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//   - Tears down the supervisor tree
//
// # Example Usage
//
// Development:
//
//	export TMDB_API_KEY=your-tmdb-api-key
//	export LOG_LEVEL=debug
//	export LOG_FORMAT=console
//	./reelmood
//
// Production:
//
//	export TMDB_API_KEY=your-tmdb-api-key
//	export HTTP_PORT=8080
//	export CORS_ORIGINS=https://reelmood.example.com
//	./reelmood
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/reelmood/reelmood/internal/api"
	"github.com/reelmood/reelmood/internal/config"
	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/recommend"
	"github.com/reelmood/reelmood/internal/supervisor"
	"github.com/reelmood/reelmood/internal/supervisor/services"
	"github.com/reelmood/reelmood/internal/tmdb"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

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
		Str("version", version).
		Str("addr", cfg.Addr()).
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Msg("Starting Reelmood")

	// TMDB client with rate limiting and circuit breaker
	client := tmdb.NewBreakerClient(&cfg.TMDB)

	engine := recommend.NewEngine(client, recommend.Options{
		MaxResults:        cfg.Recommend.MaxResults,
		DiscoverPage:      cfg.Recommend.DiscoverPage,
		TrendingMediaType: tmdb.MediaType(cfg.Recommend.TrendingMediaType),
		TrendingWindow:    tmdb.TimeWindow(cfg.Recommend.TrendingWindow),
	})

	handler := api.NewHandler(engine, client, version)

	middleware := api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		CORSAllowedOrigins:   cfg.Security.CORSOrigins,
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "Authorization"},
		CORSExposedHeaders:   []string{"X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,
		RateLimitRequests:    cfg.Security.RateLimitRequests,
		RateLimitWindow:      cfg.Security.RateLimitWindow,
		RateLimitDisabled:    cfg.Security.RateLimitDisabled,
	})

	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor finishes
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
