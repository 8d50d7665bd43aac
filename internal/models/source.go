// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"net/url"
	"strings"
)

// Source identifies one of the external catalogs Cadence can search.
type Source string

const (
	// SourceSpotify is the primary catalog.
	SourceSpotify Source = "spotify"
	// SourceDeezer is the secondary catalog.
	SourceDeezer Source = "deezer"
	// SourceYouTube is the tertiary catalog.
	SourceYouTube Source = "youtube"
	// SourceUnknown is used for records whose origin could not be determined.
	SourceUnknown Source = "unknown"
)

// KnownSources lists the supported catalogs in priority order.
var KnownSources = []Source{SourceSpotify, SourceDeezer, SourceYouTube}

// String returns the source name.
func (s Source) String() string {
	return string(s)
}

// Priority returns the fixed source priority rank. Lower ranks win when
// duplicate records are merged; unknown sources sort last.
func (s Source) Priority() int {
	switch s {
	case SourceSpotify:
		return 1
	case SourceDeezer:
		return 2
	case SourceYouTube:
		return 3
	default:
		return 99
	}
}

// Valid reports whether s is one of the known catalogs.
func (s Source) Valid() bool {
	return s.Priority() < 99
}

// ParseSource converts a case-insensitive name into a Source.
func ParseSource(name string) Source {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spotify":
		return SourceSpotify
	case "deezer":
		return SourceDeezer
	case "youtube", "yt", "youtube-music":
		return SourceYouTube
	default:
		return SourceUnknown
	}
}

// ExternalURL builds the public listening URL for an external id.
// Returns an empty string for unknown sources or empty ids.
func (s Source) ExternalURL(externalID string) string {
	if externalID == "" {
		return ""
	}
	escaped := url.PathEscape(externalID)
	switch s {
	case SourceSpotify:
		return "https://open.spotify.com/track/" + escaped
	case SourceDeezer:
		return "https://www.deezer.com/track/" + escaped
	case SourceYouTube:
		return "https://www.youtube.com/watch?v=" + url.QueryEscape(externalID)
	default:
		return ""
	}
}
