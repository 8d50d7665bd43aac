// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/logging"
)

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs the Cadence API server under supervision.
// ListenAndServe runs in its own goroutine; cancellation of the Serve
// context triggers a graceful Shutdown bounded by shutdownTimeout.
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout means 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "api-server",
		logger:          logging.Component(logger, "api-server"),
	}
}

// Serve implements suture.Service. A listen failure is returned so the
// api-layer supervisor restarts the service; http.ErrServerClosed is not a
// failure.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		defer close(listenErr)
		if err := h.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()
	h.logger.Info().Msg("API server started")

	select {
	case err := <-listenErr:
		if err == nil {
			return nil
		}
		h.logger.Error().Err(err).Msg("API server exited")
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		if err := h.shutdown(); err != nil {
			return err
		}
		<-listenErr
		h.logger.Info().Msg("API server stopped")
		return ctx.Err()
	}
}

// shutdown drains in-flight requests. ctx is already done when this runs,
// so the deadline hangs off a fresh background context.
func (h *HTTPServerService) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// String names the service in supervisor logs.
func (h *HTTPServerService) String() string {
	return h.name
}
