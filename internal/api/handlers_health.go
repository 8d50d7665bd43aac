// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

// HealthResponse reports liveness and what the service is wired to.
type HealthResponse struct {
	Status         string          `json:"status"`
	Version        string          `json:"version"`
	Uptime         float64         `json:"uptime_seconds"`
	Sources        []models.Source `json:"sources"`
	ActiveSessions int             `json:"active_sessions"`
}

// Health handles GET /api/v1/health.
// A service without any enabled catalog source still reports healthy; it
// serves explicit pools but every search comes back empty.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthResponse{
		Status:         "healthy",
		Version:        h.version,
		Uptime:         time.Since(h.startTime).Seconds(),
		Sources:        h.search.Sources(),
		ActiveSessions: len(h.sessions.Listeners()),
	})
}

// Context handles GET /api/v1/context.
func (h *Handler) Context(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.context.Current())
}
