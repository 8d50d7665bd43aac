// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// stubService implements suture.Service and fails a configured number of
// times before running until canceled.
type stubService struct {
	name       string
	startCount atomic.Int32
	failures   atomic.Int32
	maxFails   int32
}

func newStubService(name string, maxFails int32) *stubService {
	return &stubService{name: name, maxFails: maxFails}
}

func (s *stubService) Serve(ctx context.Context) error {
	s.startCount.Add(1)
	if s.failures.Add(1) <= s.maxFails {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) StartCount() int32 {
	return s.startCount.Load()
}

func (s *stubService) String() string {
	return s.name
}
