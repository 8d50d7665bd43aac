// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/recommend"
	"github.com/tomtom215/cadence/internal/sequencer"
	"github.com/tomtom215/cadence/internal/taste"
)

// ErrQueueNotStarted is returned by queue operations before StartQueue.
var ErrQueueNotStarted = errors.New("queue not started")

// QueueInfo describes the active queue of a session.
type QueueInfo struct {
	ID        string          `json:"id"`
	ContextID string          `json:"context_id"`
	State     sequencer.State `json:"state"`
}

// Session is the state owned by one listener: a taste profile, a ranker
// reading from it, and at most one active playback queue.
type Session struct {
	ListenerID string
	Taste      *taste.Store
	Ranker     *recommend.Ranker

	queueOpts sequencer.Options
	logger    zerolog.Logger

	mu        sync.Mutex
	queue     *sequencer.Sequencer
	queueID   string
	contextID string
	seedID    string
}

// StartQueue seeds the listener's queue for a playback context (an album,
// playlist or seed track). A different contextID or seed discards the
// previous queue; posting the same pair again resumes it unchanged. An
// empty contextID defaults to the seed's id.
//
//nolint:gocritic // seed is copied into the sequencer
func (s *Session) StartQueue(contextID string, seed models.CanonicalTrack, pool []models.CanonicalTrack) QueueInfo {
	if contextID == "" {
		contextID = seed.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue != nil && s.contextID == contextID && s.seedID == seed.ID {
		return s.infoLocked()
	}

	q := sequencer.New(s.queueOpts, s.logger)
	q.Init(seed, pool)

	s.queue = q
	s.queueID = uuid.New().String()
	s.contextID = contextID
	s.seedID = seed.ID

	s.logger.Info().
		Str("listener_id", s.ListenerID).
		Str("queue_id", s.queueID).
		Str("context_id", contextID).
		Str("seed_id", seed.ID).
		Int("pool", len(pool)).
		Msg("Queue started")

	return s.infoLocked()
}

// NextTrack advances the active queue. The bool is false when the pool has
// nothing left to offer.
func (s *Session) NextTrack() (models.CanonicalTrack, bool, error) {
	q, err := s.activeQueue()
	if err != nil {
		return models.CanonicalTrack{}, false, err
	}
	track, ok := q.GetNextTrack()
	return track, ok, nil
}

// SkipTrack excludes trackID from the active queue. When the queue knows
// the track, the skip also feeds the taste profile.
func (s *Session) SkipTrack(trackID string) error {
	q, err := s.activeQueue()
	if err != nil {
		return err
	}
	q.HandleSkip(trackID)
	if track, ok := q.Track(trackID); ok {
		s.Taste.RecordInteraction(track, models.InteractionSkip)
	}
	return nil
}

// Queue returns the active queue's description.
func (s *Session) Queue() (QueueInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue == nil {
		return QueueInfo{}, ErrQueueNotStarted
	}
	return s.infoLocked(), nil
}

func (s *Session) activeQueue() (*sequencer.Sequencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue == nil {
		return nil, ErrQueueNotStarted
	}
	return s.queue, nil
}

func (s *Session) infoLocked() QueueInfo {
	return QueueInfo{
		ID:        s.queueID,
		ContextID: s.contextID,
		State:     s.queue.State(),
	}
}
