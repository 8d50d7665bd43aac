// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/cadence/internal/models"
)

func TestQueueNotStarted(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, openRepository(t))
	s, _ := m.Get(context.Background(), "alice")

	if _, _, err := s.NextTrack(); !errors.Is(err, ErrQueueNotStarted) {
		t.Errorf("NextTrack err = %v", err)
	}
	if err := s.SkipTrack("x"); !errors.Is(err, ErrQueueNotStarted) {
		t.Errorf("SkipTrack err = %v", err)
	}
	if _, err := s.Queue(); !errors.Is(err, ErrQueueNotStarted) {
		t.Errorf("Queue err = %v", err)
	}
}

func TestStartQueueContextScoping(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, openRepository(t))
	s, _ := m.Get(context.Background(), "alice")

	seed := song("seed", "A", 120)
	pool := []models.CanonicalTrack{song("b", "B", 121), song("c", "C", 124)}

	first := s.StartQueue("", seed, pool)
	if first.ContextID != "seed" || first.ID == "" {
		t.Fatalf("queue info = %+v", first)
	}

	next, ok, err := s.NextTrack()
	if err != nil || !ok || next.ID != "b" {
		t.Fatalf("NextTrack = %s, %v, %v", next.ID, ok, err)
	}

	resumed := s.StartQueue("seed", seed, pool)
	if resumed.ID != first.ID || resumed.State.CurrentID != "b" {
		t.Errorf("same context should resume, got %+v", resumed)
	}

	other := s.StartQueue("playlist:2", seed, pool)
	if other.ID == first.ID {
		t.Error("new context should start a new queue")
	}
	if len(other.State.PlayHistory) != 1 {
		t.Errorf("new queue history = %v, want only the seed", other.State.PlayHistory)
	}

	reseeded := s.StartQueue("playlist:2", pool[1], pool)
	if reseeded.ID == other.ID {
		t.Error("new seed under the same context should start a new queue")
	}
	if reseeded.State.CurrentID != "c" || reseeded.ContextID != "playlist:2" {
		t.Errorf("reseeded queue = %+v, want seed c under playlist:2", reseeded)
	}
}

func TestSkipTrackFeedsTaste(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, openRepository(t))
	s, _ := m.Get(context.Background(), "alice")

	seed := song("seed", "A", 120)
	pool := []models.CanonicalTrack{song("b", "B", 121), song("c", "C", 124)}
	s.StartQueue("", seed, pool)

	if err := s.SkipTrack("b"); err != nil {
		t.Fatalf("SkipTrack: %v", err)
	}
	if err := s.SkipTrack("not-in-queue"); err != nil {
		t.Fatalf("SkipTrack unknown: %v", err)
	}

	history := s.Taste.History()
	if len(history) != 1 || history[0].TrackID != "b" || history[0].Type != models.InteractionSkip {
		t.Errorf("taste history = %+v, want one skip of b", history)
	}

	next, ok, _ := s.NextTrack()
	if !ok || next.ID != "c" {
		t.Errorf("next = %s, want c", next.ID)
	}
}
