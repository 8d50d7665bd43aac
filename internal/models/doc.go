// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package models defines the data structures shared by every Cadence engine.

Key Components:

  - CanonicalTrack: deduplicated, source-independent track identity
  - SourceRef: one catalog's external id, URL and raw payload for a track
  - AudioFeatures: tempo, Camelot key and the four [0,1] perceptual features
  - RawRecord: tagged variant of a catalog's native search result
  - InteractionEvent / PlaybackReport: listener feedback entering the taste profile
  - ListeningContext: time-of-day, weather and activity for one request

Models carry no behavior beyond small helpers (String, Priority, Clone); the
algorithms live in the catalog, resolve, taste, recommend and sequencer packages.
*/
package models
