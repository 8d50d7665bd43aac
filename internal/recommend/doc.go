// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package recommend ranks a candidate pool for one listener.

# Pipeline

 1. Base relevance is the cosine similarity between the listener's taste
    vector and the track's feature vector. Without a taste vector (cold
    start) every candidate gets a uniform random relevance from the
    ranker's seeded generator.
 2. Tracks among the 20 most recent interactions are excluded.
 3. The base score is multiplied by every matching context rule
    (see DefaultRules).
 4. Candidates are sorted by final score, descending, and the top 20 kept.
 5. Forgotten treasures are spliced in: previously liked or mostly-played
    tracks not heard for TreasureAge are sampled (up to one per splice
    position) and inserted at indices 2 and 7 with a fixed high score.

The output is therefore not purely score-sorted. Step 5 is order-sensitive:
the second insertion index refers to the list after the first insertion.

Tracks without audio features are enriched deterministically before
scoring.
*/
package recommend
