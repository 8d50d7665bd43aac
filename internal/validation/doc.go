// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package validation provides struct validation for API request bodies using
// go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata and is safe for concurrent use. Field names in errors come from
// the struct's json tags so messages match the wire format.
//
// Custom tags:
//   - camelot: a Camelot wheel key such as "8A" or "12B"
//   - interaction: an interaction type name (like, play_full, skip, other)
//   - source: a known catalog source (spotify, deezer, youtube)
//
// Usage:
//
//	type SkipRequest struct {
//	    TrackID string `json:"track_id" validate:"required,max=256"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
