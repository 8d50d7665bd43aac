// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package taste

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// Defaults used when a TasteConfig field is unset.
const (
	DefaultDecay              = 0.99
	DefaultArtistMultiplier   = 1.5
	DefaultVectorWindow       = 50
	DefaultVectorRecencyDecay = 0.95
	DefaultHistoryLimit       = 500
)

// Profile is the persisted taste record.
type Profile struct {
	Genres   map[string]float64 `json:"genres"`
	Artists  map[string]float64 `json:"artists"`
	Features Vector             `json:"features,omitempty"`
}

func newProfile() Profile {
	return Profile{
		Genres:  make(map[string]float64),
		Artists: make(map[string]float64),
	}
}

func (p *Profile) clone() Profile {
	out := Profile{
		Genres:  make(map[string]float64, len(p.Genres)),
		Artists: make(map[string]float64, len(p.Artists)),
	}
	for k, v := range p.Genres {
		out.Genres[k] = v
	}
	for k, v := range p.Artists {
		out.Artists[k] = v
	}
	if p.Features != nil {
		out.Features = make(Vector, len(p.Features))
		for k, v := range p.Features {
			out.Features[k] = v
		}
	}
	return out
}

// Store holds one listener's taste profile and interaction history.
// It is safe for concurrent use; concurrent writers are last-write-wins.
type Store struct {
	mu sync.RWMutex

	decay            float64
	artistMultiplier float64
	vectorWindow     int
	recencyDecay     float64
	historyLimit     int

	profile Profile
	history []models.InteractionEvent // oldest first
	tracks  map[string]models.CanonicalTrack
	dirty   bool

	now    func() time.Time
	logger zerolog.Logger
}

// NewStore creates an empty store. Zero config fields take package defaults.
//
//nolint:gocritic // TasteConfig is read once at construction
func NewStore(cfg config.TasteConfig, logger zerolog.Logger) *Store {
	s := &Store{
		decay:            cfg.Decay,
		artistMultiplier: cfg.ArtistMultiplier,
		vectorWindow:     cfg.VectorWindow,
		recencyDecay:     cfg.VectorRecencyDecay,
		historyLimit:     cfg.HistoryLimit,
		profile:          newProfile(),
		tracks:           make(map[string]models.CanonicalTrack),
		now:              time.Now,
		logger:           logging.Component(logger, "taste"),
	}
	if s.decay <= 0 || s.decay >= 1 {
		s.decay = DefaultDecay
	}
	if s.artistMultiplier == 0 {
		s.artistMultiplier = DefaultArtistMultiplier
	}
	if s.vectorWindow <= 0 {
		s.vectorWindow = DefaultVectorWindow
	}
	if s.recencyDecay <= 0 {
		s.recencyDecay = DefaultVectorRecencyDecay
	}
	if s.historyLimit < s.vectorWindow {
		s.historyLimit = max(DefaultHistoryLimit, s.vectorWindow)
	}
	return s
}

// WithClock replaces the event timestamp clock. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// RecordInteraction applies one interaction: decay every weight, add the
// type's weight to the track's genre and the scaled weight to its artist,
// append the event and recompute the feature vector.
//
//nolint:gocritic // track is copied into the store
func (s *Store) RecordInteraction(track models.CanonicalTrack, typ models.InteractionType) models.InteractionEvent {
	return s.record(track, typ, 0)
}

// RecordPlayback classifies a player report and records it. The completion
// ratio is kept on the event for forgotten-treasure selection.
//
//nolint:gocritic // track is copied into the store
func (s *Store) RecordPlayback(track models.CanonicalTrack, report models.PlaybackReport) models.InteractionEvent {
	completion := math.Max(0, math.Min(1, report.PlayDurationRatio))
	return s.record(track, report.Classify(track.Duration), completion)
}

//nolint:gocritic // track is copied into the store
func (s *Store) record(track models.CanonicalTrack, typ models.InteractionType, completion float64) models.InteractionEvent {
	weight := typ.Weight()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.profile.Genres {
		s.profile.Genres[k] *= s.decay
	}
	for k := range s.profile.Artists {
		s.profile.Artists[k] *= s.decay
	}

	genre := track.Genre
	if genre == "" {
		genre = models.DefaultGenre
	}
	artist := track.Artist
	if artist == "" {
		artist = models.UnknownArtist
	}
	s.profile.Genres[genre] += weight
	s.profile.Artists[artist] += weight * s.artistMultiplier

	event := models.InteractionEvent{
		TrackID:    track.ID,
		Type:       typ,
		Timestamp:  s.now().UTC(),
		Weight:     weight,
		Completion: completion,
	}
	s.history = append(s.history, event)
	s.tracks[track.ID] = track.Clone()
	s.trimLocked()

	s.profile.Features = s.vectorLocked()
	s.dirty = true

	metrics.RecordInteraction(typ.String())
	s.logger.Debug().
		Str("track_id", track.ID).
		Str("type", typ.String()).
		Float64("weight", weight).
		Msg("Interaction recorded")

	return event
}

// trimLocked bounds the history and forgets tracks it no longer references.
func (s *Store) trimLocked() {
	if len(s.history) <= s.historyLimit {
		return
	}
	drop := len(s.history) - s.historyLimit
	kept := make([]models.InteractionEvent, s.historyLimit)
	copy(kept, s.history[drop:])
	s.history = kept

	referenced := make(map[string]struct{}, len(s.history))
	for i := range s.history {
		referenced[s.history[i].TrackID] = struct{}{}
	}
	for id := range s.tracks {
		if _, ok := referenced[id]; !ok {
			delete(s.tracks, id)
		}
	}
}

// CalculateUserVector recomputes, stores and returns the feature vector.
// It returns nil when there is no history.
func (s *Store) CalculateUserVector() Vector {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Features = s.vectorLocked()
	return copyVector(s.profile.Features)
}

func (s *Store) vectorLocked() Vector {
	n := len(s.history)
	if n == 0 {
		return nil
	}

	window := min(n, s.vectorWindow)
	var sum [4]float64
	var totalWeight float64

	weight := 1.0
	for rank := 0; rank < window; rank++ {
		event := s.history[n-1-rank]

		values := [4]float64{missingFeature, missingFeature, missingFeature, missingFeature}
		if t, ok := s.tracks[event.TrackID]; ok && t.Features != nil {
			values = [4]float64{t.Features.Energy, t.Features.Valence, t.Features.Danceability, t.Features.Acousticness}
		}
		for i := range sum {
			sum[i] += values[i] * weight
		}
		totalWeight += weight
		weight *= s.recencyDecay
	}

	if totalWeight == 0 {
		return nil
	}
	return Vector{
		FeatureEnergy:       sum[0] / totalWeight,
		FeatureValence:      sum[1] / totalWeight,
		FeatureDanceability: sum[2] / totalWeight,
		FeatureAcousticness: sum[3] / totalWeight,
	}
}

// UserVector returns the current feature vector without recomputing it.
// The second result is false while the profile is in cold start.
func (s *Store) UserVector() (Vector, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.profile.Features) == 0 {
		return nil, false
	}
	return copyVector(s.profile.Features), true
}

// Profile returns a copy of the taste profile.
func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.clone()
}

// History returns a copy of the interaction log, oldest first.
func (s *Store) History() []models.InteractionEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InteractionEvent, len(s.history))
	copy(out, s.history)
	return out
}

// RecentTrackIDs returns the distinct track ids among the n most recent
// interactions.
func (s *Store) RecentTrackIDs(n int) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[string]struct{}, n)
	for i := len(s.history) - 1; i >= 0 && len(s.history)-i <= n; i-- {
		ids[s.history[i].TrackID] = struct{}{}
	}
	return ids
}

// Track returns a track the history refers to.
func (s *Store) Track(id string) (models.CanonicalTrack, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tracks[id]
	if !ok {
		return models.CanonicalTrack{}, false
	}
	return t.Clone(), true
}

// Dirty reports whether the store changed since the last MarkClean.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// MarkClean clears the dirty flag after a successful save.
func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func copyVector(v Vector) Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for k, x := range v {
		out[k] = x
	}
	return out
}
