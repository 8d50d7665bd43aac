// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/cadence/internal/session"
)

// StartQueue handles POST /api/v1/listeners/{listenerID}/queue.
func (h *Handler) StartQueue(w http.ResponseWriter, r *http.Request) {
	var req QueueRequest
	if !bindJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Seed.ID) == "" {
		NewResponseWriter(w, r).ValidationError("seed.id is required", map[string]any{"field": "seed.id", "tag": "required"})
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

	NewResponseWriter(w, r).Created(s.StartQueue(req.ContextID, req.Seed, pool))
}

// Queue handles GET /api/v1/listeners/{listenerID}/queue.
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	info, err := s.Queue()
	if err != nil {
		writeQueueError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(info)
}

// NextTrack handles GET /api/v1/listeners/{listenerID}/queue/next.
func (h *Handler) NextTrack(w http.ResponseWriter, r *http.Request) {
	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	track, found, err := s.NextTrack()
	if err != nil {
		writeQueueError(w, r, err)
		return
	}
	if !found {
		NewResponseWriter(w, r).NotFound("Queue has no other playable track")
		return
	}

	info, err := s.Queue()
	if err != nil {
		writeQueueError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(NextTrackResponse{Track: track, Queue: info})
}

// SkipTrack handles POST /api/v1/listeners/{listenerID}/queue/skip.
func (h *Handler) SkipTrack(w http.ResponseWriter, r *http.Request) {
	var req SkipRequest
	if !bindJSON(w, r, &req) {
		return
	}

	s, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	if err := s.SkipTrack(req.TrackID); err != nil {
		writeQueueError(w, r, err)
		return
	}

	info, err := s.Queue()
	if err != nil {
		writeQueueError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(info)
}

func writeQueueError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, session.ErrQueueNotStarted) {
		NewResponseWriter(w, r).Conflict("Queue not started for this listener")
		return
	}
	NewResponseWriter(w, r).InternalError(err.Error())
}
