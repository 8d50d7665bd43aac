// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/logging"
)

// DefaultFlushInterval is used when no flush interval is configured.
const DefaultFlushInterval = 30 * time.Second

// finalFlushTimeout bounds the flush performed on shutdown.
const finalFlushTimeout = 10 * time.Second

// Flusher persists dirty taste profiles. Satisfied by *session.Manager.
type Flusher interface {
	Flush(ctx context.Context) (int, error)
}

// FlushService periodically persists dirty listener profiles and flushes
// once more when stopped.
type FlushService struct {
	flusher  Flusher
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewFlushService creates a flush service. A non-positive interval means
// DefaultFlushInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFlushService(flusher Flusher, interval time.Duration, logger zerolog.Logger) *FlushService {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &FlushService{
		flusher:  flusher,
		interval: interval,
		logger:   logging.Component(logger, "profile-flush"),
		name:     "profile-flush",
	}
}

// Serve implements suture.Service. Flush failures are logged and retried
// on the next tick; they never crash the service.
func (s *FlushService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Profile flush service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
			s.flush(flushCtx)
			cancel()
			s.logger.Info().Msg("Profile flush service stopped")
			return ctx.Err()

		case <-ticker.C:
			s.flush(ctx)
		}
	}
}

func (s *FlushService) flush(ctx context.Context) {
	start := time.Now()
	n, err := s.flusher.Flush(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Int("saved", n).Msg("Profile flush incomplete")
		return
	}
	if n > 0 {
		s.logger.Debug().
			Int("saved", n).
			Dur("duration", time.Since(start)).
			Msg("Profiles flushed")
	}
}

// String names the service in supervisor logs.
func (s *FlushService) String() string {
	return s.name
}
