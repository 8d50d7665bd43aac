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

// Task is one unit of periodic maintenance. It returns how many items it
// touched, for logging.
type Task func(ctx context.Context) (int, error)

// PeriodicService runs a maintenance task on a fixed interval.
type PeriodicService struct {
	name     string
	interval time.Duration
	task     Task
	logger   zerolog.Logger
}

// NewPeriodicService creates a named periodic service. A non-positive
// interval means one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPeriodicService(name string, interval time.Duration, task Task, logger zerolog.Logger) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logging.Component(logger, name),
	}
}

// Serve implements suture.Service.
func (s *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.task(ctx)
			if err != nil {
				s.logger.Warn().Err(err).Msg("Maintenance task failed")
				continue
			}
			if n > 0 {
				s.logger.Debug().Int("items", n).Msg("Maintenance task completed")
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *PeriodicService) String() string {
	return s.name
}
