// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package resolve

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// DurationGate is the largest duration difference, in seconds, that the
// Resolver will consider a potential match.
const DurationGate = 10.0

// Resolver merges duplicate tracks from different catalogs.
type Resolver struct {
	logger zerolog.Logger
}

// New creates a Resolver.
func New(logger zerolog.Logger) *Resolver {
	return &Resolver{logger: logging.Component(logger, "resolve")}
}

// Resolve returns the deduplicated canonical set in source-priority order.
//
// Candidates are stably sorted by source priority and accepted one at a
// time. A candidate matching an already-accepted entry only contributes its
// source references to that entry; metadata of the higher-priority entry is
// never overwritten. The input slice is not modified.
func (r *Resolver) Resolve(candidates []models.CanonicalTrack) []models.CanonicalTrack {
	if len(candidates) == 0 {
		return []models.CanonicalTrack{}
	}

	ordered := make([]models.CanonicalTrack, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PrimarySource.Priority() < ordered[j].PrimarySource.Priority()
	})

	accepted := make([]models.CanonicalTrack, 0, len(ordered))
	merged := 0
	for i := range ordered {
		idx := -1
		for j := range accepted {
			if IsMatch(&accepted[j], &ordered[i]) {
				idx = j
				break
			}
		}

		if idx < 0 {
			accepted = append(accepted, ordered[i].Clone())
			continue
		}

		attachSources(&accepted[idx], &ordered[i])
		merged++
		r.logger.Debug().
			Str("canonical_id", accepted[idx].ID).
			Str("merged_id", ordered[i].ID).
			Str("source", string(ordered[i].PrimarySource)).
			Msg("Merged duplicate track")
	}

	metrics.RecordResolution(merged, len(accepted))
	return accepted
}

// IsMatch reports whether two tracks are the same recording under the
// strict rule: durations within DurationGate, and for both title and artist
// one normalized string contains the other.
func IsMatch(a, b *models.CanonicalTrack) bool {
	if math.Abs(a.Duration-b.Duration) > DurationGate {
		return false
	}
	return contains(NormalizeText(a.Title), NormalizeText(b.Title)) &&
		contains(NormalizeText(a.Artist), NormalizeText(b.Artist))
}

// NormalizeText lowercases s and drops every non-alphanumeric rune.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// contains is a symmetric containment test. Empty strings never match.
func contains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// attachSources copies source references from dup into canonical without
// replacing any reference canonical already has.
func attachSources(canonical, dup *models.CanonicalTrack) {
	if canonical.Sources == nil {
		canonical.Sources = make(map[models.Source]models.SourceRef, len(dup.Sources))
	}
	for source, ref := range dup.Sources {
		if _, exists := canonical.Sources[source]; exists {
			continue
		}
		canonical.Sources[source] = ref
	}
}
