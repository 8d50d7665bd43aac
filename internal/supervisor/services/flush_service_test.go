// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cadence/internal/logging"
)

type countingFlusher struct {
	calls     atomic.Int32
	canceled  atomic.Int32
	failUntil int32
}

func (f *countingFlusher) Flush(ctx context.Context) (int, error) {
	n := f.calls.Add(1)
	if ctx.Err() != nil {
		f.canceled.Add(1)
	}
	if n <= f.failUntil {
		return 0, errors.New("disk full")
	}
	return 1, nil
}

func TestFlushService_Interface(t *testing.T) {
	var _ suture.Service = (*FlushService)(nil)
	var _ suture.Service = (*PeriodicService)(nil)
}

func TestNewFlushService_DefaultInterval(t *testing.T) {
	svc := NewFlushService(&countingFlusher{}, 0, logging.Nop())
	if svc.interval != DefaultFlushInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultFlushInterval)
	}
	if svc.String() != "profile-flush" {
		t.Errorf("name = %q", svc.String())
	}
}

func TestFlushService_Serve(t *testing.T) {
	t.Run("flushes on every tick", func(t *testing.T) {
		flusher := &countingFlusher{}
		svc := NewFlushService(flusher, 10*time.Millisecond, logging.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		time.Sleep(60 * time.Millisecond)
		cancel()

		if err := <-errCh; !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if flusher.calls.Load() < 3 {
			t.Errorf("expected several flushes, got %d", flusher.calls.Load())
		}
	})

	t.Run("flushes once more on shutdown with a live context", func(t *testing.T) {
		flusher := &countingFlusher{}
		svc := NewFlushService(flusher, time.Hour, logging.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if flusher.calls.Load() != 1 {
			t.Errorf("expected exactly the final flush, got %d", flusher.calls.Load())
		}
		if flusher.canceled.Load() != 0 {
			t.Error("final flush ran with a canceled context")
		}
	})

	t.Run("keeps running through flush failures", func(t *testing.T) {
		flusher := &countingFlusher{failUntil: 2}
		svc := NewFlushService(flusher, 10*time.Millisecond, logging.Nop())

		ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
		defer cancel()

		if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline, got %v", err)
		}
		if flusher.calls.Load() <= 2 {
			t.Errorf("service stopped after failures: %d calls", flusher.calls.Load())
		}
	})
}

func TestPeriodicService_Serve(t *testing.T) {
	var runs atomic.Int32
	task := func(context.Context) (int, error) {
		if runs.Add(1) == 1 {
			return 0, errors.New("transient")
		}
		return 2, nil
	}

	svc := NewPeriodicService("search-cache-janitor", 10*time.Millisecond, task, logging.Nop())
	if svc.String() != "search-cache-janitor" {
		t.Errorf("name = %q", svc.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline, got %v", err)
	}
	if runs.Load() < 2 {
		t.Errorf("task ran %d times", runs.Load())
	}
}

func TestNewPeriodicService_DefaultInterval(t *testing.T) {
	svc := NewPeriodicService("gc", -1, func(context.Context) (int, error) { return 0, nil }, logging.Nop())
	if svc.interval != time.Minute {
		t.Errorf("interval = %v", svc.interval)
	}
}
