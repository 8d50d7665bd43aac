// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package taste

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
)

const epsilon = 1e-9

func newTestStore() *Store {
	return NewStore(config.TasteConfig{}, logging.Nop())
}

func featured(id, genre, artist string, energy float64) models.CanonicalTrack {
	return models.CanonicalTrack{
		ID:       id,
		Title:    id,
		Artist:   artist,
		Genre:    genre,
		Duration: 200,
		Features: &models.AudioFeatures{
			Tempo:        120,
			Key:          "8A",
			Energy:       energy,
			Valence:      0.4,
			Danceability: 0.6,
			Acousticness: 0.2,
		},
	}
}

func TestRecordInteractionWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ        models.InteractionType
		wantGenre  float64
		wantArtist float64
	}{
		{models.InteractionLike, 5, 7.5},
		{models.InteractionPlayFull, 2, 3},
		{models.InteractionSkip, -1, -1.5},
		{models.InteractionOther, 0.1, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			t.Parallel()
			s := newTestStore()
			event := s.RecordInteraction(featured("t1", "House", "Daft Punk", 0.8), tt.typ)

			p := s.Profile()
			if math.Abs(p.Genres["House"]-tt.wantGenre) > epsilon {
				t.Errorf("genre weight = %v, want %v", p.Genres["House"], tt.wantGenre)
			}
			if math.Abs(p.Artists["Daft Punk"]-tt.wantArtist) > epsilon {
				t.Errorf("artist weight = %v, want %v", p.Artists["Daft Punk"], tt.wantArtist)
			}
			if event.Weight != tt.wantGenre || event.Type != tt.typ || event.TrackID != "t1" {
				t.Errorf("unexpected event: %+v", event)
			}
		})
	}
}

func TestDecayAppliesBeforeEveryUpdate(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.RecordInteraction(featured("rock", "Rock", "Band A", 0.5), models.InteractionLike)

	const k = 25
	for i := 0; i < k; i++ {
		s.RecordInteraction(featured(fmt.Sprintf("jazz-%d", i), "Jazz", "Band B", 0.5), models.InteractionOther)
	}

	want := 5 * math.Pow(0.99, k)
	if got := s.Profile().Genres["Rock"]; math.Abs(got-want) > epsilon {
		t.Errorf("Rock weight after %d decays = %v, want %v", k, got, want)
	}
	if got := s.Profile().Artists["Band A"]; math.Abs(got-7.5*math.Pow(0.99, k)) > epsilon {
		t.Errorf("Band A weight = %v", got)
	}
}

func TestSkipsGoNegativeUnclamped(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	track := featured("t", "Metal", "Band", 0.9)
	for i := 0; i < 3; i++ {
		s.RecordInteraction(track, models.InteractionSkip)
	}

	// -1, then -1*0.99-1, then (-1.99)*0.99-1
	want := -1.99*0.99 - 1
	if got := s.Profile().Genres["Metal"]; math.Abs(got-want) > epsilon {
		t.Errorf("Metal weight = %v, want %v", got, want)
	}
}

func TestMissingGenreDefaultsToPop(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.RecordInteraction(models.CanonicalTrack{ID: "x"}, models.InteractionLike)

	p := s.Profile()
	if p.Genres[models.DefaultGenre] != 5 {
		t.Errorf("genres = %v", p.Genres)
	}
	if p.Artists[models.UnknownArtist] != 7.5 {
		t.Errorf("artists = %v", p.Artists)
	}
}

func TestColdStartVector(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	if v, ok := s.UserVector(); ok || v != nil {
		t.Errorf("empty store vector = %v, %v", v, ok)
	}
	if v := s.CalculateUserVector(); v != nil {
		t.Errorf("CalculateUserVector() on empty history = %v", v)
	}
}

func TestUserVectorRecencyWeighting(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.RecordInteraction(featured("old", "Pop", "A", 0.2), models.InteractionLike)
	s.RecordInteraction(featured("new", "Pop", "A", 1.0), models.InteractionLike)

	v, ok := s.UserVector()
	if !ok {
		t.Fatal("vector unset after interactions")
	}

	// most recent has weight 1, the older one 0.95
	want := (1.0*1 + 0.2*0.95) / 1.95
	if math.Abs(v[FeatureEnergy]-want) > epsilon {
		t.Errorf("energy = %v, want %v", v[FeatureEnergy], want)
	}
	if math.Abs(v[FeatureValence]-0.4) > epsilon {
		t.Errorf("valence = %v, want 0.4", v[FeatureValence])
	}
}

func TestUserVectorMissingFeatures(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.RecordInteraction(models.CanonicalTrack{ID: "bare", Genre: "Pop"}, models.InteractionOther)

	v := s.CalculateUserVector()
	for _, key := range []string{FeatureEnergy, FeatureValence, FeatureDanceability, FeatureAcousticness} {
		if math.Abs(v[key]-0.5) > epsilon {
			t.Errorf("%s = %v, want 0.5", key, v[key])
		}
	}
}

func TestUserVectorWindow(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	for i := 0; i < 10; i++ {
		s.RecordInteraction(featured(fmt.Sprintf("loud-%d", i), "Pop", "A", 1.0), models.InteractionOther)
	}
	for i := 0; i < DefaultVectorWindow; i++ {
		s.RecordInteraction(featured(fmt.Sprintf("quiet-%d", i), "Pop", "A", 0.0), models.InteractionOther)
	}

	v, _ := s.UserVector()
	if v[FeatureEnergy] != 0 {
		t.Errorf("energy = %v, interactions outside the window leaked in", v[FeatureEnergy])
	}
}

func TestHistoryLimit(t *testing.T) {
	t.Parallel()

	s := NewStore(config.TasteConfig{VectorWindow: 5, HistoryLimit: 8}, logging.Nop())
	for i := 0; i < 12; i++ {
		s.RecordInteraction(featured(fmt.Sprintf("t%d", i), "Pop", "A", 0.5), models.InteractionOther)
	}

	history := s.History()
	if len(history) != 8 {
		t.Fatalf("history = %d events, want 8", len(history))
	}
	if history[0].TrackID != "t4" || history[7].TrackID != "t11" {
		t.Errorf("history not trimmed from the oldest end: %s..%s", history[0].TrackID, history[7].TrackID)
	}
	if _, ok := s.Track("t0"); ok {
		t.Error("track t0 should be forgotten with its events")
	}
	if _, ok := s.Track("t11"); !ok {
		t.Error("track t11 missing")
	}
}

func TestRecentTrackIDs(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	for _, id := range []string{"a", "b", "c", "b"} {
		s.RecordInteraction(featured(id, "Pop", "A", 0.5), models.InteractionOther)
	}

	recent := s.RecentTrackIDs(2)
	if len(recent) != 2 {
		t.Fatalf("recent = %v", recent)
	}
	if _, ok := recent["a"]; ok {
		t.Error("a is outside the window")
	}
	if len(s.RecentTrackIDs(0)) != 0 {
		t.Error("RecentTrackIDs(0) should be empty")
	}
}

func TestRecordPlayback(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	track := featured("t", "Pop", "A", 0.5)

	event := s.RecordPlayback(track, models.PlaybackReport{PlayDurationRatio: 0.9})
	if event.Type != models.InteractionPlayFull || event.Completion != 0.9 {
		t.Errorf("event = %+v, want play_full at 0.9", event)
	}

	event = s.RecordPlayback(track, models.PlaybackReport{PlayDurationRatio: 0.1})
	if event.Type != models.InteractionOther {
		t.Errorf("20s of 200s classified as %s", event.Type)
	}

	event = s.RecordPlayback(track, models.PlaybackReport{PlayDurationRatio: 1.7, Liked: true})
	if event.Type != models.InteractionLike || event.Completion != 1 {
		t.Errorf("event = %+v, want like with completion clamped to 1", event)
	}
}

func TestDirtyTracking(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	if s.Dirty() {
		t.Error("new store is dirty")
	}
	s.RecordInteraction(featured("t", "Pop", "A", 0.5), models.InteractionLike)
	if !s.Dirty() {
		t.Error("store not dirty after interaction")
	}
	s.MarkClean()
	if s.Dirty() {
		t.Error("MarkClean did not clear dirty")
	}
}

func TestTakeDirty(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	if _, ok := s.TakeDirty(); ok {
		t.Error("clean store returned a snapshot")
	}

	s.RecordInteraction(featured("t", "Pop", "A", 0.5), models.InteractionLike)
	snap, ok := s.TakeDirty()
	if !ok || len(snap.History) != 1 {
		t.Fatalf("TakeDirty = %d events, %v", len(snap.History), ok)
	}
	if s.Dirty() {
		t.Error("TakeDirty did not clear dirty")
	}

	s.MarkDirty()
	if !s.Dirty() {
		t.Error("MarkDirty did not set dirty")
	}
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := newTestStore().WithClock(func() time.Time { return fixed })
	s.RecordInteraction(featured("t1", "House", "Daft Punk", 0.8), models.InteractionLike)
	s.RecordInteraction(featured("t2", "House", "Justice", 0.6), models.InteractionSkip)

	snap := s.Snapshot()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, want := range []string{`"genres"`, `"artists"`, `"features"`, `"energy"`, `"type":"like"`, `"trackId":"t1"`, `"timestamp":"2026-01-02T03:04:05Z"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("persisted form missing %s: %s", want, data)
		}
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := newTestStore()
	restored.Restore(decoded)

	if restored.Dirty() {
		t.Error("restored store should be clean")
	}
	if got, want := restored.Profile().Genres["House"], s.Profile().Genres["House"]; math.Abs(got-want) > epsilon {
		t.Errorf("House = %v, want %v", got, want)
	}
	history := restored.History()
	if len(history) != 2 || history[1].Weight != -1 {
		t.Errorf("history not restored with derived weights: %+v", history)
	}
	if _, ok := restored.Track("t2"); !ok {
		t.Error("tracks not restored")
	}
	if _, ok := restored.UserVector(); !ok {
		t.Error("feature vector not restored")
	}
}
