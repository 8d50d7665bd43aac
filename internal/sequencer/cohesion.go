// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package sequencer

import (
	"math"
	"strings"

	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/models"
)

// Cohesion weights and terms.
const (
	TempoWeight = 0.4
	KeyWeight   = 0.3
	GenreWeight = 0.1

	// TempoTolerance is the BPM difference at which the tempo score hits 0.
	TempoTolerance = 15.0
	tempoPenalty   = -0.5

	diversityMinDelta = 0.1
	diversityMaxDelta = 0.3
	diversityBonus    = 0.3
	continuityWeight  = 0.2

	// ArtistRepeatPenalty is subtracted when the candidate's artist was
	// among the most recently played.
	ArtistRepeatPenalty = 0.5
)

// TempoScore is 1 - |dBPM|/15 within 15 BPM, else -0.5.
func TempoScore(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > TempoTolerance {
		return tempoPenalty
	}
	return 1 - d/TempoTolerance
}

// KeyScore rewards harmonic compatibility: 1.0 for the same key, 0.8 for
// an adjacent key, and -0.2 per step of Camelot distance otherwise.
func KeyScore(a, b string) float64 {
	switch d := features.KeyDistance(a, b); d {
	case 0:
		return 1.0
	case 1:
		return 0.8
	default:
		return -0.2 * float64(d)
	}
}

// GenreScore is 1 when both genres are set and equal, ignoring case.
func GenreScore(a, b string) float64 {
	if a != "" && strings.EqualFold(a, b) {
		return 1
	}
	return 0
}

// EnergyScore is the continuity or diversity term. In a diversity phase an
// energy shift within [0.1, 0.3] earns a flat 0.3; otherwise similar energy
// earns up to 0.2.
func EnergyScore(current, candidate float64, diversity bool) float64 {
	delta := math.Abs(candidate - current)
	if diversity {
		if delta >= diversityMinDelta && delta <= diversityMaxDelta {
			return diversityBonus
		}
		return 0
	}
	return (1 - delta) * continuityWeight
}

// CohesionScore rates candidate as the next track after current. Both
// tracks are expected to carry features (see features.Enrich); missing
// features score as zero values. recentArtists lists the artists of the
// most recently played tracks.
func CohesionScore(current, candidate *models.CanonicalTrack, diversity bool, recentArtists []string) float64 {
	var cf, nf models.AudioFeatures
	if current.Features != nil {
		cf = *current.Features
	}
	if candidate.Features != nil {
		nf = *candidate.Features
	}

	score := TempoWeight*TempoScore(cf.Tempo, nf.Tempo) +
		KeyWeight*KeyScore(cf.Key, nf.Key) +
		GenreWeight*GenreScore(current.Genre, candidate.Genre) +
		EnergyScore(cf.Energy, nf.Energy, diversity)

	if artistIn(candidate.Artist, recentArtists) {
		score -= ArtistRepeatPenalty
	}
	return score
}

func artistIn(artist string, recent []string) bool {
	artist = strings.TrimSpace(artist)
	if artist == "" {
		return false
	}
	for _, a := range recent {
		if strings.EqualFold(artist, strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}
