// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package recommend

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/taste"
)

// defaultSeed is used when Options.Seed is zero.
const defaultSeed = 42

// Ranker produces ranked discovery lists for one listener.
// It is safe for concurrent use once the With* options are applied.
type Ranker struct {
	opts    Options
	rules   []ContextRule
	taste   TasteSource
	context ContextSource
	now     func() time.Time
	logger  zerolog.Logger

	// Random source for determinism (protected by rngMu for concurrent access)
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewRanker creates a ranker over a taste source and context source.
//
//nolint:gocritic // Options is copied into the ranker
func NewRanker(opts Options, tasteSrc TasteSource, contextSrc ContextSource, logger zerolog.Logger) (*Ranker, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranker options: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Ranker{
		opts:    opts,
		rules:   DefaultRules,
		taste:   tasteSrc,
		context: contextSrc,
		now:     time.Now,
		logger:  logging.Component(logger, "recommend"),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation sampling
	}, nil
}

// WithClock replaces the clock used for treasure age. Like WithRules it
// must be called before the ranker is shared; neither takes a lock.
func (r *Ranker) WithClock(now func() time.Time) *Ranker {
	r.now = now
	return r
}

// WithRules replaces the context rule table. Construction time only.
func (r *Ranker) WithRules(rules []ContextRule) *Ranker {
	r.rules = rules
	return r
}

// GenerateRecommendations ranks pool for the listener. An empty pool
// yields an empty result.
func (r *Ranker) GenerateRecommendations(pool []models.CanonicalTrack) Result {
	ctx := r.context.Current()
	if len(pool) == 0 {
		return Result{Items: []Recommendation{}, Context: ctx}
	}

	userVector, personalized := r.taste.UserVector()
	recent := r.taste.RecentTrackIDs(r.opts.RecencyWindow)

	ranked := make([]Recommendation, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	excluded := 0
	for i := range pool {
		id := pool[i].ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, played := recent[id]; played {
			excluded++
			continue
		}

		track := features.Enrich(pool[i])
		var base float64
		if personalized {
			base = taste.CosineSimilarity(userVector, taste.FeatureVector(track.Features))
		} else {
			base = r.randomRelevance()
		}
		mult := ContextMultiplier(r.rules, ctx, track.Features)

		ranked = append(ranked, Recommendation{
			Track:             track,
			Score:             base * mult,
			BaseScore:         base,
			ContextMultiplier: mult,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > r.opts.Limit {
		ranked = ranked[:r.opts.Limit]
	}

	treasures := r.pickTreasures(ranked, pool)
	items := splice(ranked, treasures, r.opts.positions())
	if len(items) > r.opts.Limit {
		items = items[:r.opts.Limit]
	}

	injected := 0
	for i := range items {
		if items[i].Treasure {
			injected++
		}
	}

	metrics.RecordRecommendations(!personalized, injected)
	r.logger.Debug().
		Int("pool", len(pool)).
		Int("excluded_recent", excluded).
		Int("returned", len(items)).
		Int("treasures", injected).
		Bool("cold_start", !personalized).
		Str("time_of_day", string(ctx.TimeOfDay)).
		Str("weather", string(ctx.Weather)).
		Msg("Recommendations generated")

	return Result{
		Items:     items,
		Context:   ctx,
		ColdStart: !personalized,
		Treasures: injected,
	}
}

// pickTreasures samples up to len(positions) forgotten treasures that are
// not already in the ranked list.
func (r *Ranker) pickTreasures(ranked []Recommendation, pool []models.CanonicalTrack) []Recommendation {
	slots := len(r.opts.TreasurePositions)
	if slots == 0 {
		return nil
	}

	present := make(map[string]struct{}, len(ranked))
	for i := range ranked {
		present[ranked[i].Track.ID] = struct{}{}
	}

	cutoff := r.now().Add(-r.opts.TreasureAge)
	ids := treasureCandidates(r.taste.History(), cutoff, r.opts.TreasureCompletion)

	candidates := make([]models.CanonicalTrack, 0, len(ids))
	for _, id := range ids {
		if _, ok := present[id]; ok {
			continue
		}
		if t, ok := r.lookup(id, pool); ok {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	r.rngMu.Lock()
	order := r.rng.Perm(len(candidates))
	r.rngMu.Unlock()

	picked := make([]Recommendation, 0, slots)
	for _, idx := range order {
		if len(picked) == slots {
			break
		}
		picked = append(picked, Recommendation{
			Track:             features.Enrich(candidates[idx]),
			Score:             r.opts.TreasureScore,
			BaseScore:         r.opts.TreasureScore,
			ContextMultiplier: 1,
			Treasure:          true,
		})
	}
	return picked
}

// lookup finds a history track in the taste store, then in the pool.
func (r *Ranker) lookup(id string, pool []models.CanonicalTrack) (models.CanonicalTrack, bool) {
	if t, ok := r.taste.Track(id); ok {
		return t, true
	}
	for i := range pool {
		if pool[i].ID == id {
			return pool[i], true
		}
	}
	return models.CanonicalTrack{}, false
}

func (r *Ranker) randomRelevance() float64 {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Float64()
}
