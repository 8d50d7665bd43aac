// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"github.com/goccy/go-json"
)

// UnknownArtist is the display fallback for records without artist metadata.
const UnknownArtist = "Unknown Artist"

// DefaultGenre is assigned to tracks with no genre during enrichment.
const DefaultGenre = "Pop"

// SourceRef links a canonical track to one catalog's copy of it.
type SourceRef struct {
	// ExternalID is the catalog's own identifier.
	ExternalID string `json:"external_id"`

	// ExternalURL is a playable/viewable link in that catalog.
	ExternalURL string `json:"external_url,omitempty"`

	// Raw is the unmodified catalog payload, kept for playback fallbacks.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// AudioFeatures holds the perceptual profile of a track.
// Tempo and Key use zero values to mean "missing"; the [0,1] features are
// trusted whenever the struct itself is present.
type AudioFeatures struct {
	Tempo        float64 `json:"tempo"`
	Key          string  `json:"key"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Danceability float64 `json:"danceability"`
	Acousticness float64 `json:"acousticness"`
}

// Complete reports whether tempo and key are both populated.
func (f *AudioFeatures) Complete() bool {
	return f != nil && f.Tempo > 0 && f.Key != ""
}

// CanonicalTrack is the deduplicated, source-independent identity of a recording.
type CanonicalTrack struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Album    string  `json:"album,omitempty"`
	Duration float64 `json:"duration"` // seconds
	CoverURL string  `json:"cover_url,omitempty"`

	// Sources maps a source name to that catalog's reference. The primary
	// source is always present; others are alternates for playback fallback.
	Sources map[Source]SourceRef `json:"sources"`

	// PrimarySource is the catalog whose metadata this track carries.
	PrimarySource Source `json:"primary_source"`

	Features *AudioFeatures `json:"features,omitempty"`
	Genre    string         `json:"genre,omitempty"`
}

// Clone returns a deep copy so callers can mutate sources or features
// without touching shared pool entries.
//
//nolint:gocritic // value receiver keeps Clone usable on map values
func (t CanonicalTrack) Clone() CanonicalTrack {
	out := t
	if t.Sources != nil {
		out.Sources = make(map[Source]SourceRef, len(t.Sources))
		for k, v := range t.Sources {
			out.Sources[k] = v
		}
	}
	if t.Features != nil {
		f := *t.Features
		out.Features = &f
	}
	return out
}

// AlternateSources returns every source other than the primary one.
//
//nolint:gocritic // value receiver keeps the helper usable on map values
func (t CanonicalTrack) AlternateSources() []Source {
	alts := make([]Source, 0, len(t.Sources))
	for _, s := range KnownSources {
		if s == t.PrimarySource {
			continue
		}
		if _, ok := t.Sources[s]; ok {
			alts = append(alts, s)
		}
	}
	return alts
}
