// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package features

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/tomtom215/cadence/internal/models"
)

const (
	// MinTempo and MaxTempo bound synthesized tempos in BPM.
	MinTempo = 80.0
	MaxTempo = 180.0
)

// seedFor derives a stable PRNG seed from a track's identity.
func seedFor(id, title string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(title))
	return int64(h.Sum64()) //nolint:gosec // wraparound is fine for a seed
}

// Synthesize returns a deterministic synthetic feature profile for (id, title).
func Synthesize(id, title string) models.AudioFeatures {
	//nolint:gosec // deterministic synthesis, not security sensitive
	r := rand.New(rand.NewSource(seedFor(id, title)))

	return models.AudioFeatures{
		Tempo:        math.Round(MinTempo + r.Float64()*(MaxTempo-MinTempo)),
		Key:          CamelotWheel[r.Intn(len(CamelotWheel))],
		Energy:       r.Float64(),
		Valence:      r.Float64(),
		Danceability: r.Float64(),
		Acousticness: r.Float64(),
	}
}

// Enrich returns a copy of t with missing features and genre filled in.
// Tracks that already carry tempo and key keep their catalog values;
// partial profiles only receive the fields they lack.
//
//nolint:gocritic // value semantics: callers keep their original track untouched
func Enrich(t models.CanonicalTrack) models.CanonicalTrack {
	out := t.Clone()
	if out.Genre == "" {
		out.Genre = models.DefaultGenre
	}
	if out.Features.Complete() {
		return out
	}

	synth := Synthesize(t.ID, t.Title)
	if out.Features == nil {
		out.Features = &synth
		return out
	}

	f := out.Features
	if f.Tempo <= 0 {
		f.Tempo = synth.Tempo
	}
	if !ValidKey(f.Key) {
		f.Key = synth.Key
	}
	return out
}

// EnrichAll enriches every track in pool, preserving order.
func EnrichAll(pool []models.CanonicalTrack) []models.CanonicalTrack {
	out := make([]models.CanonicalTrack, len(pool))
	for i := range pool {
		out[i] = Enrich(pool[i])
	}
	return out
}
