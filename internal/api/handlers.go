// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/recommend"
	"github.com/tomtom215/cadence/internal/session"
)

// Searcher is the discovery surface the handlers need.
type Searcher interface {
	Search(ctx context.Context, query string) []models.CanonicalTrack
	Match(ctx context.Context, target *models.CanonicalTrack) (models.CanonicalTrack, int, bool)
	Sources() []models.Source
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health and context
//   - handlers_search.go: search and match
//   - handlers_listener.go: interactions, profile, recommendations
//   - handlers_queue.go: smart-shuffle queue
type Handler struct {
	search    Searcher
	sessions  *session.Manager
	context   recommend.ContextSource
	version   string
	startTime time.Time

	// requestTimeout bounds handlers that fan out to catalogs.
	requestTimeout time.Duration
}

// NewHandler creates a handler. requestTimeout of zero disables the extra
// bound; the catalog gatherer still applies its own deadline.
func NewHandler(search Searcher, sessions *session.Manager, contextSrc recommend.ContextSource, version string, requestTimeout time.Duration) *Handler {
	return &Handler{
		search:         search,
		sessions:       sessions,
		context:        contextSrc,
		version:        version,
		startTime:      time.Now(),
		requestTimeout: requestTimeout,
	}
}

// withTimeout derives the context for catalog-bound work.
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}
