// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package taste

import (
	"sort"

	"github.com/tomtom215/cadence/internal/models"
)

// Snapshot is the persisted state of a Store.
type Snapshot struct {
	Profile Profile                   `json:"profile"`
	History []models.InteractionEvent `json:"history"`
	Tracks  []models.CanonicalTrack   `json:"tracks,omitempty"`
}

// Snapshot captures the store's persisted state. Tracks are sorted by id.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// TakeDirty returns a snapshot and clears the dirty flag in one step, so
// interactions recorded while the snapshot is being saved mark the store
// dirty again. The second result is false when nothing changed. Call
// MarkDirty if saving the snapshot fails.
func (s *Store) TakeDirty() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return Snapshot{}, false
	}
	s.dirty = false
	return s.snapshotLocked(), true
}

// MarkDirty flags the store for the next flush.
func (s *Store) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Profile: s.profile.clone(),
		History: make([]models.InteractionEvent, len(s.history)),
		Tracks:  make([]models.CanonicalTrack, 0, len(s.tracks)),
	}
	copy(snap.History, s.history)
	for _, t := range s.tracks {
		snap.Tracks = append(snap.Tracks, t.Clone())
	}
	sort.Slice(snap.Tracks, func(i, j int) bool { return snap.Tracks[i].ID < snap.Tracks[j].ID })
	return snap
}

// Restore replaces the store's state with snap. Derived event weights are
// recomputed from the event types, and the history is trimmed to the
// configured limit. The store is left clean.
//
//nolint:gocritic // Snapshot is consumed
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = snap.Profile.clone()
	if s.profile.Features != nil && len(s.profile.Features) == 0 {
		s.profile.Features = nil
	}

	s.history = make([]models.InteractionEvent, len(snap.History))
	copy(s.history, snap.History)
	for i := range s.history {
		s.history[i].Weight = s.history[i].Type.Weight()
	}

	s.tracks = make(map[string]models.CanonicalTrack, len(snap.Tracks))
	for i := range snap.Tracks {
		s.tracks[snap.Tracks[i].ID] = snap.Tracks[i].Clone()
	}

	s.trimLocked()
	s.dirty = false
}
