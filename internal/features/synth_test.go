// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package features

import (
	"testing"

	"github.com/tomtom215/cadence/internal/models"
)

func TestSynthesizeDeterministic(t *testing.T) {
	t.Parallel()

	a := Synthesize("spotify:1", "Get Lucky")
	b := Synthesize("spotify:1", "Get Lucky")
	if a != b {
		t.Errorf("same identity produced different features: %+v vs %+v", a, b)
	}

	c := Synthesize("spotify:2", "Get Lucky")
	if a == c {
		t.Error("different ids produced identical features")
	}
}

func TestSynthesizeRanges(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"a", "b", "c", "deezer:3135556", "youtube:5NV6Rdv1a3I"} {
		f := Synthesize(id, "title "+id)
		if f.Tempo < MinTempo || f.Tempo > MaxTempo {
			t.Errorf("%s: tempo %v out of range", id, f.Tempo)
		}
		if !ValidKey(f.Key) {
			t.Errorf("%s: key %q not on the wheel", id, f.Key)
		}
		for name, v := range map[string]float64{
			"energy":       f.Energy,
			"valence":      f.Valence,
			"danceability": f.Danceability,
			"acousticness": f.Acousticness,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s: %s %v out of [0,1]", id, name, v)
			}
		}
	}
}

func TestEnrich(t *testing.T) {
	t.Parallel()

	t.Run("fills missing features and genre", func(t *testing.T) {
		t.Parallel()
		track := models.CanonicalTrack{ID: "deezer:1", Title: "One More Time"}
		got := Enrich(track)
		if !got.Features.Complete() {
			t.Fatalf("features not complete: %+v", got.Features)
		}
		if got.Genre != models.DefaultGenre {
			t.Errorf("genre = %q, want %q", got.Genre, models.DefaultGenre)
		}
		if track.Features != nil {
			t.Error("Enrich mutated its input")
		}
		if *got.Features != *Enrich(track).Features {
			t.Error("enrichment is not deterministic")
		}
	})

	t.Run("keeps catalog features", func(t *testing.T) {
		t.Parallel()
		track := models.CanonicalTrack{
			ID:       "spotify:1",
			Genre:    "House",
			Features: &models.AudioFeatures{Tempo: 124, Key: "4A", Energy: 0.8},
		}
		got := Enrich(track)
		if got.Features.Tempo != 124 || got.Features.Key != "4A" || got.Features.Energy != 0.8 {
			t.Errorf("catalog features overwritten: %+v", got.Features)
		}
		if got.Genre != "House" {
			t.Errorf("genre = %q", got.Genre)
		}
	})

	t.Run("fills partial profile", func(t *testing.T) {
		t.Parallel()
		track := models.CanonicalTrack{
			ID:       "spotify:2",
			Title:    "Harder Better",
			Features: &models.AudioFeatures{Energy: 0.9},
		}
		got := Enrich(track)
		synth := Synthesize(track.ID, track.Title)
		if got.Features.Tempo != synth.Tempo || got.Features.Key != synth.Key {
			t.Errorf("partial profile not filled: %+v", got.Features)
		}
		if got.Features.Energy != 0.9 {
			t.Errorf("existing energy overwritten: %v", got.Features.Energy)
		}
	})
}
