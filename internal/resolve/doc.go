// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package resolve deduplicates canonical tracks that describe the same
// recording across catalogs.
//
// Two matchers exist. The Resolver uses a strict duration gate (10s) and
// a containment test on normalized title and artist; it is the path used for
// search results. Confidence scores a pair 0-100 from edit-distance
// similarity and is used by Merge and BestMatch, where a score below
// AcceptThreshold is treated as "not a match". Both prefer false negatives
// over merging distinct songs.
package resolve
