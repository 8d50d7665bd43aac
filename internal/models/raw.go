// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// RawPayload is implemented by each catalog's native record type.
// The interface is sealed so the normalizer can switch over it exhaustively.
type RawPayload interface {
	Source() Source
	isRawPayload()
}

// RawRecord is one catalog search result before normalization.
type RawRecord struct {
	Source  Source
	Payload RawPayload

	// Raw holds the payload bytes exactly as the catalog returned them.
	Raw json.RawMessage
}

// rawEnvelope is the serialized form of RawRecord.
type rawEnvelope struct {
	Source  Source          `json:"source"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the record as {"source": ..., "payload": ...}.
//
//nolint:gocritic // value receiver so both values and pointers marshal
func (r RawRecord) MarshalJSON() ([]byte, error) {
	payload := r.Raw
	if len(payload) == 0 && r.Payload != nil {
		encoded, err := json.Marshal(r.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", r.Source, err)
		}
		payload = encoded
	}
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return json.Marshal(rawEnvelope{Source: r.Source, Payload: payload})
}

// UnmarshalJSON decodes the envelope and resolves the payload variant by source.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var env rawEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode raw record: %w", err)
	}

	payload, err := DecodePayload(env.Source, env.Payload)
	if err != nil {
		return err
	}

	r.Source = env.Source
	r.Payload = payload
	r.Raw = env.Payload
	return nil
}

// DecodePayload decodes catalog bytes into the payload variant for source.
// A null or empty payload yields a nil RawPayload without error.
func DecodePayload(source Source, data []byte) (RawPayload, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	switch source {
	case SourceSpotify:
		var p SpotifyTrack
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode spotify payload: %w", err)
		}
		return &p, nil
	case SourceDeezer:
		var p DeezerTrack
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode deezer payload: %w", err)
		}
		return &p, nil
	case SourceYouTube:
		var p YouTubeVideo
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode youtube payload: %w", err)
		}
		return &p, nil
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// SpotifyTrack is a track object from the Spotify Web API search endpoint.
type SpotifyTrack struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	DurationMS   int64             `json:"duration_ms"`
	Artists      []SpotifyArtist   `json:"artists"`
	Album        *SpotifyAlbum     `json:"album,omitempty"`
	ExternalURLs map[string]string `json:"external_urls,omitempty"`
}

// SpotifyArtist is a simplified Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// SpotifyAlbum is a simplified Spotify album.
type SpotifyAlbum struct {
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images,omitempty"`
}

// SpotifyImage is one rendition of album artwork.
type SpotifyImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Source implements RawPayload.
func (*SpotifyTrack) Source() Source { return SourceSpotify }
func (*SpotifyTrack) isRawPayload()  {}

// DeezerTrack is a track object from the Deezer public search API.
type DeezerTrack struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Duration int           `json:"duration"` // seconds
	Link     string        `json:"link,omitempty"`
	Artist   *DeezerArtist `json:"artist,omitempty"`
	Album    *DeezerAlbum  `json:"album,omitempty"`
}

// DeezerArtist is the artist stub embedded in Deezer tracks.
type DeezerArtist struct {
	Name string `json:"name"`
}

// DeezerAlbum is the album stub embedded in Deezer tracks.
type DeezerAlbum struct {
	Title       string `json:"title"`
	Cover       string `json:"cover,omitempty"`
	CoverMedium string `json:"cover_medium,omitempty"`
	CoverBig    string `json:"cover_big,omitempty"`
}

// Source implements RawPayload.
func (*DeezerTrack) Source() Source { return SourceDeezer }
func (*DeezerTrack) isRawPayload()  {}

// YouTubeVideo is a video resource from the YouTube Data API v3 videos endpoint.
type YouTubeVideo struct {
	ID             string                `json:"id"`
	Snippet        YouTubeSnippet        `json:"snippet"`
	ContentDetails YouTubeContentDetails `json:"contentDetails"`
}

// YouTubeSnippet carries the video title, channel and thumbnails.
type YouTubeSnippet struct {
	Title        string                      `json:"title"`
	ChannelTitle string                      `json:"channelTitle"`
	Thumbnails   map[string]YouTubeThumbnail `json:"thumbnails,omitempty"`
}

// YouTubeThumbnail is one thumbnail rendition.
type YouTubeThumbnail struct {
	URL string `json:"url"`
}

// YouTubeContentDetails carries the ISO-8601 duration.
type YouTubeContentDetails struct {
	Duration string `json:"duration"`
}

// Source implements RawPayload.
func (*YouTubeVideo) Source() Source { return SourceYouTube }
func (*YouTubeVideo) isRawPayload()  {}
