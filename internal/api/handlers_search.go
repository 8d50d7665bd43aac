// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
)

// Search handles GET /api/v1/search?q=.
// Partial catalog outages still return 200 with whatever resolved.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req := SearchRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if !validate(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	tracks := h.search.Search(ctx, req.Query)

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(req.Query)).
		Int("tracks", len(tracks)).
		Msg("Search served")

	NewResponseWriter(w, r).SuccessList(SearchResponse{Query: req.Query, Tracks: tracks}, len(tracks))
}

// Match handles POST /api/v1/match.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !bindJSON(w, r, &req) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	target := models.CanonicalTrack{
		Title:    strings.TrimSpace(req.Title),
		Artist:   strings.TrimSpace(req.Artist),
		Duration: req.Duration,
	}

	resp := MatchResponse{}
	if best, confidence, ok := h.search.Match(ctx, &target); ok {
		resp.Matched = true
		resp.Confidence = confidence
		resp.Track = &best
	}
	NewResponseWriter(w, r).Success(resp)
}
