// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/cadence/internal/api"
	"github.com/tomtom215/cadence/internal/catalog"
	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/discovery"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/resolve"
	"github.com/tomtom215/cadence/internal/session"
	"github.com/tomtom215/cadence/internal/situation"
	"github.com/tomtom215/cadence/internal/supervisor"
	"github.com/tomtom215/cadence/internal/supervisor/services"
	"github.com/tomtom215/cadence/internal/taste"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	cacheSweepInterval = time.Minute
	valueLogGCInterval = 10 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Cadence stopped with error")
	}
}

func run(cfg *config.Config) error {
	logger := logging.Logger()
	logger.Info().Str("version", version).Msg("Starting Cadence")

	// Discovery
	sources := catalog.NewSources(cfg.Catalog)
	if len(sources) == 0 {
		logger.Warn().Msg("No catalog sources enabled; search will return no results")
	}
	gatherer := catalog.NewGatherer(sources, cfg.Catalog.Deadline, logger)
	searchCache := discovery.NewCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	search := discovery.NewService(gatherer, resolve.New(logger), searchCache, logger)

	logger.Info().
		Int("sources", len(sources)).
		Dur("deadline", cfg.Catalog.Deadline).
		Msg("Discovery initialized")

	// Storage
	repo, err := taste.OpenBadger(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing profile store")
		}
	}()

	// Sessions
	contextEngine := situation.NewEngine()
	sessions, err := session.NewManager(repo, contextEngine, session.OptionsFromConfig(cfg), logger)
	if err != nil {
		return err
	}

	// HTTP
	handler := api.NewHandler(search, sessions, contextEngine, version, cfg.Server.Timeout)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	if cfg.Security.RateLimitDisabled {
		logger.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	// Supervision
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromSupervisor(cfg.Supervisor))
	if err != nil {
		return err
	}

	tree.AddStorageService(services.NewFlushService(sessions, cfg.Supervisor.FlushInterval, logger))
	tree.AddStorageService(services.NewPeriodicService("value-log-gc", valueLogGCInterval,
		func(context.Context) (int, error) {
			rewrote, err := repo.CollectGarbage()
			if rewrote {
				return 1, err
			}
			return 0, err
		}, logger))
	tree.AddDiscoveryService(services.NewPeriodicService("search-cache-janitor", cacheSweepInterval,
		func(context.Context) (int, error) {
			return searchCache.CleanupExpired(), nil
		}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", server.Addr).Msg("Cadence listening")

	err = tree.Serve(ctx)
	if report, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		for _, svc := range report {
			logger.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("Cadence stopped")
	return nil
}
