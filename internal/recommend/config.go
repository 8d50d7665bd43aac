// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/cadence/internal/config"
)

// Options tunes a Ranker.
type Options struct {
	// Limit is the maximum length of the ranked list.
	Limit int

	// RecencyWindow is the number of most recent interactions whose tracks
	// are excluded from ranking.
	RecencyWindow int

	// TreasureAge is how long a track must have gone unplayed to resurface.
	TreasureAge time.Duration

	// TreasureCompletion is the completion ratio above which a play counts
	// as enjoyed.
	TreasureCompletion float64

	// TreasurePositions are the splice indices, applied in ascending order.
	TreasurePositions []int

	// TreasureScore is the score assigned to spliced treasures.
	TreasureScore float64

	// Seed seeds the cold-start and treasure sampling generator.
	// If zero, a fixed default seed is used.
	Seed int64
}

// DefaultOptions returns the standard ranking settings.
func DefaultOptions() Options {
	return Options{
		Limit:              20,
		RecencyWindow:      20,
		TreasureAge:        30 * 24 * time.Hour,
		TreasureCompletion: 0.8,
		TreasurePositions:  []int{2, 7},
		TreasureScore:      1.0,
		Seed:               42,
	}
}

// OptionsFromConfig maps the recommend config section onto Options.
//
//nolint:gocritic // RecommendConfig is read once at construction
func OptionsFromConfig(cfg config.RecommendConfig) Options {
	return Options{
		Limit:              cfg.Limit,
		RecencyWindow:      cfg.RecencyWindow,
		TreasureAge:        cfg.TreasureAge,
		TreasureCompletion: cfg.TreasureCompletion,
		TreasurePositions:  append([]int(nil), cfg.TreasurePositions...),
		TreasureScore:      cfg.TreasureScore,
		Seed:               cfg.Seed,
	}
}

// Validate checks the options.
//
//nolint:gocritic // Options is small and read-only here
func (o Options) Validate() error {
	if o.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", o.Limit)
	}
	if o.RecencyWindow < 0 {
		return fmt.Errorf("recency window must not be negative, got %d", o.RecencyWindow)
	}
	if o.TreasureAge < 0 {
		return fmt.Errorf("treasure age must not be negative, got %s", o.TreasureAge)
	}
	if o.TreasureCompletion < 0 || o.TreasureCompletion > 1 {
		return fmt.Errorf("treasure completion must be in [0,1], got %v", o.TreasureCompletion)
	}
	for _, p := range o.TreasurePositions {
		if p < 0 {
			return fmt.Errorf("treasure positions must not be negative, got %d", p)
		}
	}
	return nil
}

// positions returns the splice indices in ascending order.
//
//nolint:gocritic // Options is small and read-only here
func (o Options) positions() []int {
	out := append([]int(nil), o.TreasurePositions...)
	sort.Ints(out)
	return out
}
