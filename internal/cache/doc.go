// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package cache provides a generic, TTL-bounded LRU cache.
//
// The discovery service uses it to memoize resolved catalog searches keyed by
// the normalized query string:
//
//	c := cache.NewLRU[[]models.CanonicalTrack](512, 10*time.Minute)
//	if tracks, ok := c.Get(key); ok {
//	    return tracks
//	}
package cache
