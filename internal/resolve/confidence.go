// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package resolve

import (
	"math"
	"strings"
	"unicode"

	"github.com/tomtom215/cadence/internal/models"
)

const (
	// AcceptThreshold is the minimum Confidence for two tracks to be merged.
	AcceptThreshold = 80

	// ConfidenceDurationReject is the duration difference, in seconds, above
	// which Confidence is 0 regardless of text.
	ConfidenceDurationReject = 15.0

	closeDuration = 2.0
	closeBonus    = 5
	titleWeight   = 60.0
	artistWeight  = 40.0
	maxConfidence = 100
)

// qualifierWords are dropped before comparing; they describe the upload,
// not the recording.
var qualifierWords = map[string]struct{}{
	"official": {},
	"video":    {},
	"audio":    {},
	"lyrics":   {},
	"hd":       {},
	"4k":       {},
	"ft":       {},
	"feat":     {},
}

// Confidence scores how likely a and b are the same recording, 0-100.
func Confidence(a, b *models.CanonicalTrack) int {
	delta := math.Abs(a.Duration - b.Duration)
	if delta > ConfidenceDurationReject {
		return 0
	}

	score := Similarity(a.Title, b.Title)*titleWeight + Similarity(a.Artist, b.Artist)*artistWeight
	total := int(math.Round(score))
	if delta <= closeDuration {
		total += closeBonus
	}
	if total > maxConfidence {
		total = maxConfidence
	}
	return total
}

// Similarity is (maxLen - editDistance) / maxLen over the cleaned strings.
// Returns 0 when either side is empty after cleaning.
func Similarity(a, b string) float64 {
	ca, cb := []rune(cleanQualifiers(a)), []rune(cleanQualifiers(b))
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	maxLen := len(ca)
	if len(cb) > maxLen {
		maxLen = len(cb)
	}
	return float64(maxLen-levenshtein(ca, cb)) / float64(maxLen)
}

// cleanQualifiers lowercases s, turns punctuation into word breaks and
// removes qualifier words.
func cleanQualifiers(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	words := strings.Fields(mapped)
	kept := words[:0]
	for _, w := range words {
		if _, drop := qualifierWords[w]; !drop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// BestMatch returns the candidate with the highest Confidence against
// target, provided it reaches AcceptThreshold. The first maximum wins.
func BestMatch(target *models.CanonicalTrack, candidates []models.CanonicalTrack) (models.CanonicalTrack, int, bool) {
	best, bestScore := -1, -1
	for i := range candidates {
		if s := Confidence(target, &candidates[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 || bestScore < AcceptThreshold {
		return models.CanonicalTrack{}, bestScore, false
	}
	return candidates[best].Clone(), bestScore, true
}

// Merge folds incoming tracks into base. An incoming track scoring at least
// AcceptThreshold against a base entry attaches its sources to the best
// such entry; anything else is appended as a new entry. Neither input slice
// is modified.
func Merge(base, incoming []models.CanonicalTrack) []models.CanonicalTrack {
	out := make([]models.CanonicalTrack, 0, len(base)+len(incoming))
	for i := range base {
		out = append(out, base[i].Clone())
	}

	for i := range incoming {
		best, bestScore := -1, AcceptThreshold-1
		for j := range out {
			if s := Confidence(&out[j], &incoming[i]); s > bestScore {
				best, bestScore = j, s
			}
		}
		if best < 0 {
			out = append(out, incoming[i].Clone())
			continue
		}
		attachSources(&out[best], &incoming[i])
	}
	return out
}
