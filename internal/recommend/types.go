// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/situation"
	"github.com/tomtom215/cadence/internal/taste"
)

// Recommendation is one entry of a ranked discovery list.
type Recommendation struct {
	Track models.CanonicalTrack `json:"track"`

	// Score is the final score: BaseScore x ContextMultiplier, or the
	// treasure score for spliced treasures.
	Score float64 `json:"score"`

	BaseScore         float64 `json:"base_score"`
	ContextMultiplier float64 `json:"context_multiplier"`

	// Treasure marks a resurfaced forgotten treasure.
	Treasure bool `json:"treasure,omitempty"`
}

// TasteSource is the part of a taste store the ranker reads.
type TasteSource interface {
	UserVector() (taste.Vector, bool)
	RecentTrackIDs(n int) map[string]struct{}
	History() []models.InteractionEvent
	Track(id string) (models.CanonicalTrack, bool)
}

// ContextSource supplies the current listening context.
type ContextSource interface {
	Current() models.ListeningContext
}

var (
	_ TasteSource   = (*taste.Store)(nil)
	_ ContextSource = (*situation.Engine)(nil)
)

// Result is a ranked list plus how it was produced.
type Result struct {
	Items     []Recommendation        `json:"items"`
	Context   models.ListeningContext `json:"context"`
	ColdStart bool                    `json:"cold_start"`
	Treasures int                     `json:"treasures"`
}
