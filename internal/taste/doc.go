// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package taste learns one listener's preferences from interaction events.

# Weights

Every interaction first multiplies all genre and artist weights by the decay
factor (0.99), then adds the interaction weight:

	like       +5.0
	play_full  +2.0   (only once playback crosses 30s)
	skip       -1.0
	other      +0.1

The artist receives weight x 1.5. Weights are signed and never clamped, so
repeated skips drive them negative.

# Feature Vector

CalculateUserVector averages the energy, valence, danceability and
acousticness of the 50 most recent interactions, weighting the event at
rank r (0 = most recent) by 0.95^r. A track without features contributes
0.5 on every axis. With no history the vector stays unset, which callers
treat as cold start.

# Persistence

Snapshot and Restore exchange the persisted form: the profile record
{genres, artists, features}, the bounded history [{type, trackId,
timestamp}], and the tracks the history refers to. BadgerRepository stores
these under profile:, history: and tracks: keys per listener.
*/
package taste
