// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"sort"
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

// treasureCandidates returns the ids of tracks last played before cutoff
// that were liked or played past the completion threshold at least once.
// The result is sorted so sampling depends only on the generator state.
func treasureCandidates(history []models.InteractionEvent, cutoff time.Time, completion float64) []string {
	type stats struct {
		last    time.Time
		enjoyed bool
	}

	byTrack := make(map[string]*stats)
	for i := range history {
		e := &history[i]
		st, ok := byTrack[e.TrackID]
		if !ok {
			st = &stats{}
			byTrack[e.TrackID] = st
		}
		if e.Timestamp.After(st.last) {
			st.last = e.Timestamp
		}
		if e.Type == models.InteractionLike || e.Completion > completion {
			st.enjoyed = true
		}
	}

	ids := make([]string, 0, len(byTrack))
	for id, st := range byTrack {
		if st.enjoyed && st.last.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// splice inserts treasures at the given ascending positions. A position
// past the end appends. Each insertion sees the list produced by the
// previous one.
func splice(ranked, treasures []Recommendation, positions []int) []Recommendation {
	out := ranked
	for i, t := range treasures {
		if i >= len(positions) {
			break
		}
		pos := positions[i]
		if pos > len(out) {
			pos = len(out)
		}
		out = append(out, Recommendation{})
		copy(out[pos+1:], out[pos:])
		out[pos] = t
	}
	return out
}
