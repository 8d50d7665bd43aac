// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package discovery turns a free-text query into a deduplicated list of
// canonical tracks: gather from every catalog, normalize, resolve, cache.
package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/cache"
	"github.com/tomtom215/cadence/internal/catalog"
	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/resolve"
)

// Service orchestrates catalog search.
type Service struct {
	gatherer *catalog.Gatherer
	resolver *resolve.Resolver
	cache    *cache.LRU[[]models.CanonicalTrack]
	logger   zerolog.Logger
}

// NewService creates a search service. A nil cache disables caching.
func NewService(gatherer *catalog.Gatherer, resolver *resolve.Resolver, results *cache.LRU[[]models.CanonicalTrack], logger zerolog.Logger) *Service {
	return &Service{
		gatherer: gatherer,
		resolver: resolver,
		cache:    results,
		logger:   logging.Component(logger, "discovery"),
	}
}

// NewCache creates the resolved-search cache.
func NewCache(size int, ttl time.Duration) *cache.LRU[[]models.CanonicalTrack] {
	return cache.NewLRU[[]models.CanonicalTrack](size, ttl)
}

// Sources lists the catalogs searched, in priority order.
func (s *Service) Sources() []models.Source {
	return s.gatherer.Sources()
}

// Search returns the deduplicated canonical tracks for query, in source
// priority order. It never fails: failed sources contribute nothing and an
// empty query yields an empty slice. Results are cached when at least one
// source answered.
func (s *Service) Search(ctx context.Context, query string) []models.CanonicalTrack {
	key := cacheKey(query)
	if key == "" {
		return []models.CanonicalTrack{}
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.RecordSearchCache(true)
			return cloneAll(cached)
		}
		metrics.RecordSearchCache(false)
	}

	start := time.Now()
	results := s.gatherer.Gather(ctx, strings.TrimSpace(query))
	tracks := features.EnrichAll(s.resolver.Resolve(catalog.NormalizeAll(catalog.Records(results))))

	logging.Ctx(ctx).Debug().
		Str("component", "discovery").
		Str("query", key).
		Int("sources_ok", len(results)).
		Int("tracks", len(tracks)).
		Dur("elapsed", time.Since(start)).
		Msg("Search resolved")

	if s.cache != nil && len(results) > 0 {
		s.cache.Add(key, cloneAll(tracks))
	}
	return tracks
}

// Match looks target up across catalogs by "title artist" and returns the
// best candidate whose confidence reaches resolve.AcceptThreshold.
func (s *Service) Match(ctx context.Context, target *models.CanonicalTrack) (models.CanonicalTrack, int, bool) {
	query := strings.TrimSpace(target.Title + " " + target.Artist)
	if query == "" {
		return models.CanonicalTrack{}, 0, false
	}

	match, score, ok := resolve.BestMatch(target, s.Search(ctx, query))
	s.logger.Debug().
		Str("title", target.Title).
		Str("artist", target.Artist).
		Int("confidence", score).
		Bool("matched", ok).
		Msg("Cross-catalog match")
	return match, score, ok
}

func cacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

func cloneAll(tracks []models.CanonicalTrack) []models.CanonicalTrack {
	out := make([]models.CanonicalTrack, len(tracks))
	for i := range tracks {
		out[i] = tracks[i].Clone()
	}
	return out
}
