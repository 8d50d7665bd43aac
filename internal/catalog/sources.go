// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"github.com/tomtom215/cadence/internal/config"
)

// NewSources builds a breaker-wrapped client for every enabled catalog,
// in priority order.
//
//nolint:gocritic // CatalogConfig is read once at startup
func NewSources(cfg config.CatalogConfig) []Source {
	settings := DefaultBreakerSettings()
	sources := make([]Source, 0, 3)

	if cfg.Spotify.Enabled {
		sources = append(sources, NewCircuitBreakerSource(NewSpotifyClient(cfg.Spotify, cfg.SearchLimit), settings))
	}
	if cfg.Deezer.Enabled {
		sources = append(sources, NewCircuitBreakerSource(NewDeezerClient(cfg.Deezer, cfg.SearchLimit), settings))
	}
	if cfg.YouTube.Enabled {
		sources = append(sources, NewCircuitBreakerSource(NewYouTubeClient(cfg.YouTube, cfg.SearchLimit), settings))
	}
	return sources
}
