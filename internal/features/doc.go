// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package features provides audio-feature helpers shared by the ranker and the
queue sequencer.

Two concerns live here:

  - Camelot wheel parsing and harmonic key distance, used for DJ-style
    key compatibility when sequencing a queue.
  - Deterministic feature synthesis. Catalogs rarely return tempo or key, so
    missing features are derived from a PRNG seeded by the track's id and
    title. The same track always yields the same synthetic profile, and no
    global random source is ever consulted.

Example:

	t = features.Enrich(t)
	d := features.KeyDistance(t.Features.Key, other.Features.Key)
*/
package features
