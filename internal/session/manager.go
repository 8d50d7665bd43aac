// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package session owns per-listener state. Each listener gets an explicit
// Session holding its own taste store, ranker and queue, created on first
// use and persisted through a taste.Repository.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/recommend"
	"github.com/tomtom215/cadence/internal/sequencer"
	"github.com/tomtom215/cadence/internal/taste"
)

// ErrInvalidListener is returned for a blank listener id.
var ErrInvalidListener = errors.New("listener id is required")

// Options configures the sessions a Manager creates.
type Options struct {
	Taste     config.TasteConfig
	Recommend recommend.Options
	Queue     sequencer.Options
}

// OptionsFromConfig collects session options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Taste:     cfg.Taste,
		Recommend: recommend.OptionsFromConfig(cfg.Recommend),
		Queue:     sequencer.OptionsFromConfig(cfg.Queue),
	}
}

// Manager creates sessions lazily and flushes their taste profiles.
type Manager struct {
	repo    taste.Repository
	context recommend.ContextSource
	opts    Options
	logger  zerolog.Logger

	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager validates the ranking options and returns an empty manager.
//
//nolint:gocritic // Options is read once at construction
func NewManager(repo taste.Repository, contextSrc recommend.ContextSource, opts Options, logger zerolog.Logger) (*Manager, error) {
	if err := opts.Recommend.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend options: %w", err)
	}
	return &Manager{
		repo:     repo,
		context:  contextSrc,
		opts:     opts,
		logger:   logging.Component(logger, "session"),
		sessions: make(map[string]*Session),
	}, nil
}

// Get returns the listener's session, loading its persisted profile the
// first time the listener is seen.
func (m *Manager) Get(ctx context.Context, listenerID string) (*Session, error) {
	listenerID = strings.TrimSpace(listenerID)
	if listenerID == "" {
		return nil, ErrInvalidListener
	}

	m.mu.RLock()
	s, exists := m.sessions[listenerID]
	m.mu.RUnlock()

	if exists {
		return s, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if s, exists = m.sessions[listenerID]; exists {
		return s, nil
	}

	s, err := m.newSession(ctx, listenerID)
	if err != nil {
		return nil, err
	}
	m.sessions[listenerID] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return s, nil
}

func (m *Manager) newSession(ctx context.Context, listenerID string) (*Session, error) {
	logger := m.logger.With().Str("listener_id", listenerID).Logger()
	store := taste.NewStore(m.opts.Taste, logger)

	snap, err := m.repo.Load(ctx, listenerID)
	switch {
	case errors.Is(err, taste.ErrProfileNotFound):
		logger.Debug().Msg("New listener, starting empty profile")
	case err != nil:
		return nil, fmt.Errorf("load profile for %s: %w", listenerID, err)
	default:
		store.Restore(snap)
		logger.Debug().Int("events", len(snap.History)).Msg("Profile loaded")
	}

	ranker, err := recommend.NewRanker(m.opts.Recommend, store, m.context, logger)
	if err != nil {
		return nil, fmt.Errorf("create ranker: %w", err)
	}

	return &Session{
		ListenerID: listenerID,
		Taste:      store,
		Ranker:     ranker,
		queueOpts:  m.opts.Queue,
		logger:     logger,
	}, nil
}

// Flush saves every dirty profile and returns how many were written.
// Failed saves stay dirty for the next flush; their errors are joined.
func (m *Manager) Flush(ctx context.Context) (int, error) {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	var (
		saved int
		errs  []error
	)
	for _, s := range sessions {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		snap, dirty := s.Taste.TakeDirty()
		if !dirty {
			continue
		}

		err := m.repo.Save(ctx, s.ListenerID, snap)
		metrics.RecordProfileFlush(err)
		if err != nil {
			s.Taste.MarkDirty()
			m.logger.Warn().Err(err).Str("listener_id", s.ListenerID).Msg("Profile flush failed")
			errs = append(errs, fmt.Errorf("save profile %s: %w", s.ListenerID, err))
			continue
		}
		saved++
	}

	if saved > 0 {
		m.logger.Debug().Int("saved", saved).Msg("Profiles flushed")
	}
	return saved, errors.Join(errs...)
}

// Forget drops the listener's session and deletes the persisted profile.
func (m *Manager) Forget(ctx context.Context, listenerID string) error {
	m.mu.Lock()
	delete(m.sessions, listenerID)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	return m.repo.Delete(ctx, listenerID)
}

// Listeners returns the ids of in-memory sessions, sorted.
func (m *Manager) Listeners() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
