// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestSourcePriority(t *testing.T) {
	t.Parallel()

	if SourceSpotify.Priority() >= SourceDeezer.Priority() {
		t.Error("spotify should outrank deezer")
	}
	if SourceDeezer.Priority() >= SourceYouTube.Priority() {
		t.Error("deezer should outrank youtube")
	}
	if SourceUnknown.Valid() {
		t.Error("unknown source should not be valid")
	}
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Source
	}{
		{"spotify", SourceSpotify},
		{"  Deezer ", SourceDeezer},
		{"YouTube", SourceYouTube},
		{"youtube-music", SourceYouTube},
		{"tidal", SourceUnknown},
		{"", SourceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseSource(tt.input); got != tt.want {
				t.Errorf("ParseSource(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSourceExternalURL(t *testing.T) {
	t.Parallel()

	if got := SourceSpotify.ExternalURL("abc"); got != "https://open.spotify.com/track/abc" {
		t.Errorf("spotify url = %q", got)
	}
	if got := SourceYouTube.ExternalURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("youtube url = %q", got)
	}
	if got := SourceDeezer.ExternalURL(""); got != "" {
		t.Errorf("empty id should yield empty url, got %q", got)
	}
	if got := SourceUnknown.ExternalURL("x"); got != "" {
		t.Errorf("unknown source should yield empty url, got %q", got)
	}
}

func TestCanonicalTrackClone(t *testing.T) {
	t.Parallel()

	orig := CanonicalTrack{
		ID:            "spotify:1",
		PrimarySource: SourceSpotify,
		Sources:       map[Source]SourceRef{SourceSpotify: {ExternalID: "1"}},
		Features:      &AudioFeatures{Tempo: 120, Key: "8A"},
	}

	clone := orig.Clone()
	clone.Sources[SourceDeezer] = SourceRef{ExternalID: "2"}
	clone.Features.Tempo = 90

	if _, ok := orig.Sources[SourceDeezer]; ok {
		t.Error("clone shares the sources map with the original")
	}
	if orig.Features.Tempo != 120 {
		t.Error("clone shares the features struct with the original")
	}
	if alts := clone.AlternateSources(); len(alts) != 1 || alts[0] != SourceDeezer {
		t.Errorf("AlternateSources() = %v, want [deezer]", alts)
	}
}

func TestRawRecordJSONRoundTrip(t *testing.T) {
	t.Parallel()

	input := `[
		{"source":"spotify","payload":{"id":"sp1","name":"Get Lucky","duration_ms":248000,"artists":[{"name":"Daft Punk"}]}},
		{"source":"deezer","payload":{"id":42,"title":"Get Lucky","duration":249}},
		{"source":"youtube","payload":{"id":"yt1","snippet":{"title":"Get Lucky (Official Audio)","channelTitle":"Daft Punk"},"contentDetails":{"duration":"PT4M9S"}}},
		{"source":"deezer","payload":null}
	]`

	var records []RawRecord
	if err := json.Unmarshal([]byte(input), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	sp, ok := records[0].Payload.(*SpotifyTrack)
	if !ok || sp.Name != "Get Lucky" || sp.DurationMS != 248000 {
		t.Errorf("spotify payload decoded incorrectly: %#v", records[0].Payload)
	}
	if dz, ok := records[1].Payload.(*DeezerTrack); !ok || dz.ID != 42 {
		t.Errorf("deezer payload decoded incorrectly: %#v", records[1].Payload)
	}
	if yt, ok := records[2].Payload.(*YouTubeVideo); !ok || yt.ContentDetails.Duration != "PT4M9S" {
		t.Errorf("youtube payload decoded incorrectly: %#v", records[2].Payload)
	}
	if records[3].Payload != nil {
		t.Errorf("null payload should decode to nil, got %#v", records[3].Payload)
	}

	encoded, err := json.Marshal(records[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again RawRecord
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("unmarshal re-encoded record: %v", err)
	}
	if again.Source != SourceSpotify {
		t.Errorf("source = %q after round trip", again.Source)
	}
}

func TestDecodePayloadUnknownSource(t *testing.T) {
	t.Parallel()

	if _, err := DecodePayload("napster", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown source")
	}
}
