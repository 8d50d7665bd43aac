// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package models

import (
	"fmt"
	"strings"
	"time"
)

// InteractionType classifies listener feedback on a track.
type InteractionType int

const (
	// InteractionOther is any weak signal (short listen, queue add, ...).
	InteractionOther InteractionType = iota
	// InteractionLike is an explicit like.
	InteractionLike
	// InteractionPlayFull is recorded once playback crosses the continuous-play threshold.
	InteractionPlayFull
	// InteractionSkip is an explicit skip.
	InteractionSkip
)

// PlayFullThreshold is the continuous playback needed before a play counts as full.
const PlayFullThreshold = 30 * time.Second

// String returns the wire name for the interaction type.
func (t InteractionType) String() string {
	switch t {
	case InteractionLike:
		return "like"
	case InteractionPlayFull:
		return "play_full"
	case InteractionSkip:
		return "skip"
	case InteractionOther:
		return "other"
	default:
		return "unknown"
	}
}

// Weight returns the additive taste weight for this interaction type.
// Skips are negative and unclamped.
func (t InteractionType) Weight() float64 {
	switch t {
	case InteractionLike:
		return 5.0
	case InteractionPlayFull:
		return 2.0
	case InteractionSkip:
		return -1.0
	default:
		return 0.1
	}
}

// ParseInteractionType converts a wire name into an InteractionType.
func ParseInteractionType(s string) (InteractionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like":
		return InteractionLike, nil
	case "play_full":
		return InteractionPlayFull, nil
	case "skip":
		return InteractionSkip, nil
	case "other":
		return InteractionOther, nil
	default:
		return InteractionOther, fmt.Errorf("unknown interaction type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t InteractionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InteractionType) UnmarshalText(text []byte) error {
	parsed, err := ParseInteractionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// InteractionEvent is one entry of a listener's append-only interaction log.
type InteractionEvent struct {
	TrackID   string          `json:"trackId"`
	Type      InteractionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`

	// Weight is the derived weight applied to the taste profile.
	Weight float64 `json:"-"`

	// Completion is the fraction of the track that was played, when known.
	Completion float64 `json:"completion,omitempty"`
}

// PlaybackReport is the richer interaction record produced by a player.
type PlaybackReport struct {
	PlayDurationRatio float64 `json:"play_duration_ratio"`
	Liked             bool    `json:"liked"`
	Skipped           bool    `json:"skipped"`
}

// Classify maps a playback report onto a discrete interaction type.
// A like wins over a skip; a play counts as full only once it crosses
// PlayFullThreshold of the track's duration.
func (r PlaybackReport) Classify(durationSeconds float64) InteractionType {
	switch {
	case r.Liked:
		return InteractionLike
	case r.Skipped:
		return InteractionSkip
	case r.PlayDurationRatio*durationSeconds >= PlayFullThreshold.Seconds():
		return InteractionPlayFull
	default:
		return InteractionOther
	}
}
