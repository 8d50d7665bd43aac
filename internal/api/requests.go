// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package api

import (
	"github.com/tomtom215/cadence/internal/models"
	"github.com/tomtom215/cadence/internal/session"
	"github.com/tomtom215/cadence/internal/taste"
)

// Request and response bodies.

// SearchRequest is bound from the query string of GET /search.
type SearchRequest struct {
	Query string `json:"q" validate:"required,max=200"`
}

// SearchResponse lists the resolved tracks for a query.
type SearchResponse struct {
	Query  string                  `json:"query"`
	Tracks []models.CanonicalTrack `json:"tracks"`
}

// MatchRequest describes a track to find in the catalogs.
type MatchRequest struct {
	Title    string  `json:"title" validate:"required,max=300"`
	Artist   string  `json:"artist" validate:"omitempty,max=300"`
	Duration float64 `json:"duration" validate:"gte=0"`
}

// MatchResponse carries the best match at or above the acceptance threshold.
type MatchResponse struct {
	Matched    bool                   `json:"matched"`
	Confidence int                    `json:"confidence"`
	Track      *models.CanonicalTrack `json:"track,omitempty"`
}

// PlaybackInput is a player's report for one track.
type PlaybackInput struct {
	PlayDurationRatio float64 `json:"play_duration_ratio" validate:"gte=0"`
	Liked             bool    `json:"liked"`
	Skipped           bool    `json:"skipped"`
}

// InteractionRequest records either a typed interaction or a playback report.
type InteractionRequest struct {
	Track    models.CanonicalTrack `json:"track"`
	Type     string                `json:"type,omitempty" validate:"omitempty,interaction"`
	Playback *PlaybackInput        `json:"playback,omitempty"`
}

// ProfileResponse describes a listener's taste profile.
type ProfileResponse struct {
	ListenerID    string                    `json:"listener_id"`
	Profile       taste.Profile             `json:"profile"`
	Vector        taste.Vector              `json:"vector,omitempty"`
	ColdStart     bool                      `json:"cold_start"`
	HistorySize   int                       `json:"history_size"`
	RecentHistory []models.InteractionEvent `json:"recent_history"`
}

// RecommendRequest ranks an explicit pool, or the results of a search.
type RecommendRequest struct {
	Pool  []models.CanonicalTrack `json:"pool" validate:"max=1000"`
	Query string                  `json:"query" validate:"omitempty,max=200"`
}

// QueueRequest starts a smart-shuffle queue.
type QueueRequest struct {
	ContextID string                  `json:"context_id" validate:"omitempty,max=256"`
	Seed      models.CanonicalTrack   `json:"seed"`
	Pool      []models.CanonicalTrack `json:"pool" validate:"max=1000"`
	Query     string                  `json:"query" validate:"omitempty,max=200"`
}

// SkipRequest skips one queued track.
type SkipRequest struct {
	TrackID string `json:"track_id" validate:"required,max=256"`
}

// NextTrackResponse is the selected track plus the queue state after it.
type NextTrackResponse struct {
	Track models.CanonicalTrack `json:"track"`
	Queue session.QueueInfo     `json:"queue"`
}

// recentHistoryLimit bounds the history returned with a profile.
const recentHistoryLimit = 20
