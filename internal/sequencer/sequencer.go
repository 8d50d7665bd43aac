// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package sequencer implements smart shuffle: picking each next track by
// audio cohesion with the current one instead of uniformly at random.
//
// A Sequencer is Idle until Init. Each GetNextTrack scores every eligible
// candidate (pool minus played minus skipped) with CohesionScore and
// returns the first maximum. When nothing is eligible the play and skip
// histories are cleared and selection continues over the full pool, so the
// queue never runs dry unless the pool holds nothing but the current track.
package sequencer

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// Defaults used when a QueueConfig field is unset.
const (
	DefaultDiversityInterval = 5
	DefaultArtistWindow      = 5
)

// Options tunes a Sequencer.
type Options struct {
	// DiversityInterval makes every selection with
	// len(playHistory) % DiversityInterval == 0 a diversity phase.
	DiversityInterval int

	// ArtistWindow is how many recently played tracks the artist
	// repetition penalty looks at.
	ArtistWindow int
}

// OptionsFromConfig maps the queue config section onto Options.
func OptionsFromConfig(cfg config.QueueConfig) Options {
	return Options{
		DiversityInterval: cfg.DiversityInterval,
		ArtistWindow:      cfg.ArtistWindow,
	}
}

// State is a read-only view of the queue.
type State struct {
	SeedID         string   `json:"seed_id"`
	CurrentID      string   `json:"current_id"`
	PlayHistory    []string `json:"play_history"`
	Skipped        []string `json:"skipped"`
	PoolSize       int      `json:"pool_size"`
	DiversityPhase bool     `json:"diversity_phase"`
	Resets         int      `json:"resets"`
}

// Sequencer is the queue state for one playback context.
// It is safe for concurrent use.
type Sequencer struct {
	mu sync.Mutex

	opts   Options
	logger zerolog.Logger

	seeded  bool
	seed    models.CanonicalTrack
	current models.CanonicalTrack
	pool    []models.CanonicalTrack
	byID    map[string]*models.CanonicalTrack

	playHistory []string
	played      map[string]struct{}
	skipped     map[string]struct{}
	skipOrder   []string
	diversity   bool
	resets      int
}

// New creates an idle sequencer.
func New(opts Options, logger zerolog.Logger) *Sequencer {
	if opts.DiversityInterval <= 0 {
		opts.DiversityInterval = DefaultDiversityInterval
	}
	if opts.ArtistWindow <= 0 {
		opts.ArtistWindow = DefaultArtistWindow
	}
	return &Sequencer{
		opts:    opts,
		logger:  logging.Component(logger, "sequencer"),
		played:  make(map[string]struct{}),
		skipped: make(map[string]struct{}),
	}
}

// Init seeds the queue. The pool is enriched with deterministic features
// and deduplicated by id; the seed counts as the first played track.
// Calling Init again discards all previous state.
//
//nolint:gocritic // seed is copied into the sequencer
func (s *Sequencer) Init(seed models.CanonicalTrack, pool []models.CanonicalTrack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed = features.Enrich(seed)
	s.current = s.seed
	s.pool = make([]models.CanonicalTrack, 0, len(pool))
	s.byID = make(map[string]*models.CanonicalTrack, len(pool)+1)

	for i := range pool {
		if _, dup := s.byID[pool[i].ID]; dup {
			continue
		}
		s.pool = append(s.pool, features.Enrich(pool[i]))
		s.byID[pool[i].ID] = &s.pool[len(s.pool)-1]
	}
	if _, ok := s.byID[s.seed.ID]; !ok {
		s.byID[s.seed.ID] = &s.seed
	}

	s.playHistory = []string{s.seed.ID}
	s.played = map[string]struct{}{s.seed.ID: {}}
	s.skipped = make(map[string]struct{})
	s.skipOrder = nil
	s.diversity = false
	s.resets = 0
	s.seeded = true

	s.logger.Debug().
		Str("seed_id", s.seed.ID).
		Int("pool", len(s.pool)).
		Msg("Queue seeded")
}

// GetNextTrack selects, records and returns the next track. The second
// result is false when the sequencer is idle or the pool has nothing but
// the current track.
//
// Exhaustion resets the histories but keeps the current track excluded.
// A pool holding a single track other than the seed therefore yields that
// track once and returns false from then on; the seed is only picked again
// when it is itself in the pool.
func (s *Sequencer) GetNextTrack() (models.CanonicalTrack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		return models.CanonicalTrack{}, false
	}

	eligible := s.eligibleLocked()
	if len(eligible) == 0 {
		s.resetLocked()
		eligible = s.eligibleLocked()
		if len(eligible) == 0 {
			return models.CanonicalTrack{}, false
		}
	}

	s.diversity = len(s.playHistory)%s.opts.DiversityInterval == 0
	recentArtists := s.recentArtistsLocked()

	best := -1
	bestScore := 0.0
	for _, idx := range eligible {
		score := CohesionScore(&s.current, &s.pool[idx], s.diversity, recentArtists)
		if best < 0 || score > bestScore {
			best, bestScore = idx, score
		}
	}

	chosen := s.pool[best]
	s.playHistory = append(s.playHistory, chosen.ID)
	s.played[chosen.ID] = struct{}{}
	s.current = chosen

	metrics.RecordQueueSelection(s.diversity)
	s.logger.Debug().
		Str("track_id", chosen.ID).
		Float64("cohesion", bestScore).
		Bool("diversity_phase", s.diversity).
		Int("eligible", len(eligible)).
		Msg("Next track selected")

	return chosen.Clone(), true
}

// HandleSkip excludes trackID from selection until the next pool reset.
func (s *Sequencer) HandleSkip(trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, already := s.skipped[trackID]; already {
		return
	}
	s.skipped[trackID] = struct{}{}
	s.skipOrder = append(s.skipOrder, trackID)
	metrics.RecordQueueSkip()
}

// Seeded reports whether Init has been called.
func (s *Sequencer) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}

// Current returns the most recently selected track (the seed right after Init).
func (s *Sequencer) Current() (models.CanonicalTrack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		return models.CanonicalTrack{}, false
	}
	return s.current.Clone(), true
}

// Track looks up a track in the pool or the seed.
func (s *Sequencer) Track(id string) (models.CanonicalTrack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return models.CanonicalTrack{}, false
	}
	return t.Clone(), true
}

// State returns a copy of the queue state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		SeedID:         s.seed.ID,
		CurrentID:      s.current.ID,
		PlayHistory:    append([]string{}, s.playHistory...),
		Skipped:        append([]string{}, s.skipOrder...),
		PoolSize:       len(s.pool),
		DiversityPhase: s.diversity,
		Resets:         s.resets,
	}
}

// eligibleLocked returns pool indices that are neither played nor skipped,
// in pool order.
func (s *Sequencer) eligibleLocked() []int {
	out := make([]int, 0, len(s.pool))
	for i := range s.pool {
		id := s.pool[i].ID
		if _, ok := s.played[id]; ok {
			continue
		}
		if _, ok := s.skipped[id]; ok {
			continue
		}
		out = append(out, i)
	}
	return out
}

// resetLocked clears both histories. The current track stays played so it
// is not picked again immediately.
func (s *Sequencer) resetLocked() {
	s.playHistory = []string{s.current.ID}
	s.played = map[string]struct{}{s.current.ID: {}}
	s.skipped = make(map[string]struct{})
	s.skipOrder = nil
	s.resets++

	metrics.RecordQueueReset()
	s.logger.Debug().Int("pool", len(s.pool)).Msg("Queue exhausted, history reset")
}

func (s *Sequencer) recentArtistsLocked() []string {
	start := len(s.playHistory) - s.opts.ArtistWindow
	if start < 0 {
		start = 0
	}
	artists := make([]string, 0, len(s.playHistory)-start)
	for _, id := range s.playHistory[start:] {
		if t, ok := s.byID[id]; ok {
			artists = append(artists, t.Artist)
		}
	}
	return artists
}
