// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/cadence/internal/features"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/session"
)

// loadSession resolves the {listenerID} session or writes the error response.
func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(r.Context(), listenerID(r))
	switch {
	case errors.Is(err, session.ErrInvalidListener):
		NewResponseWriter(w, r).BadRequest(err.Error())
		return nil, false
	case err != nil:
		NewResponseWriter(w, r).StorageError(err)
		return nil, false
	}
	return s, true
}

// RecordInteraction handles POST /api/v1/listeners/{listenerID}/interactions.
// The body carries either an explicit type or a playback report; a type wins
// when both are present.
func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest
	if !bindJSON(w, r, &req) {
		return
	}

	rw := NewResponseWriter(w, r)
	if strings.TrimSpace(req.Track.ID) == "" {
		rw.ValidationError("track.id is required", map[string]any{"field": "track.id", "tag": "required"})
		return
	}
	if req.Type == "" && req.Playback == nil {
		rw.ValidationError("either type or playback is required", nil)
		return
	}

	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	// Missing features are synthesized the same way the ranker fills them.
	track := features.Enrich(req.Track)

	var event models.InteractionEvent
	if req.Type != "" {
		// Already validated by the interaction tag.
		typ, _ := models.ParseInteractionType(req.Type)
		event = s.Taste.RecordInteraction(track, typ)
	} else {
		event = s.Taste.RecordPlayback(track, models.PlaybackReport{
			PlayDurationRatio: req.Playback.PlayDurationRatio,
			Liked:             req.Playback.Liked,
			Skipped:           req.Playback.Skipped,
		})
	}

	logging.Ctx(r.Context()).Debug().
		Str("track_id", sanitizeLogValue(event.TrackID)).
		Stringer("type", event.Type).
		Msg("Interaction recorded")

	rw.Created(event)
}

// Profile handles GET /api/v1/listeners/{listenerID}/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	history := s.Taste.History()
	recent := history
	if len(recent) > recentHistoryLimit {
		recent = recent[len(recent)-recentHistoryLimit:]
	}
	vector, hasVector := s.Taste.UserVector()

	NewResponseWriter(w, r).Success(ProfileResponse{
		ListenerID:    s.ListenerID,
		Profile:       s.Taste.Profile(),
		Vector:        vector,
		ColdStart:     !hasVector,
		HistorySize:   len(history),
		RecentHistory: recent,
	})
}

// ForgetListener handles DELETE /api/v1/listeners/{listenerID}/profile.
func (h *Handler) ForgetListener(w http.ResponseWriter, r *http.Request) {
	id := listenerID(r)
	if id == "" {
		NewResponseWriter(w, r).BadRequest(session.ErrInvalidListener.Error())
		return
	}
	if err := h.sessions.Forget(r.Context(), id); err != nil {
		NewResponseWriter(w, r).StorageError(err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}

// Recommendations handles POST /api/v1/listeners/{listenerID}/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !bindJSON(w, r, &req) {
		return
	}

	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	pool, ok := h.resolvePool(w, r, req.Pool, req.Query)
	if !ok {
		return
	}

	result := s.Ranker.GenerateRecommendations(pool)
	NewResponseWriter(w, r).SuccessList(result, len(result.Items))
}

// resolvePool returns the explicit pool, or searches for query when the
// pool is empty.
func (h *Handler) resolvePool(w http.ResponseWriter, r *http.Request, pool []models.CanonicalTrack, query string) ([]models.CanonicalTrack, bool) {
	if len(pool) > 0 {
		return pool, true
	}
	query = strings.TrimSpace(query)
	if query == "" {
		NewResponseWriter(w, r).BadRequest(ErrEmptyPool.Error())
		return nil, false
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()
	return h.search.Search(ctx, query), true
}
