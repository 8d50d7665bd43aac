// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"errors"

	"github.com/tomtom215/cadence/internal/models"
)

var (
	// ErrSourceUnavailable wraps any failure of a single catalog search.
	ErrSourceUnavailable = errors.New("catalog source unavailable")

	// ErrNilRecord is returned by Normalize for a record without a payload.
	ErrNilRecord = errors.New("raw record has no payload")
)

// Source is one external catalog.
type Source interface {
	// Name identifies the catalog.
	Name() models.Source

	// Priority is the fixed rank used when duplicates are merged; lower wins.
	Priority() int

	// Search returns the catalog's raw records for a free-text query.
	Search(ctx context.Context, query string) ([]models.RawRecord, error)
}

// Ensure the HTTP clients implement Source
var (
	_ Source = (*SpotifyClient)(nil)
	_ Source = (*DeezerClient)(nil)
	_ Source = (*YouTubeClient)(nil)
	_ Source = (*CircuitBreakerSource)(nil)
)
