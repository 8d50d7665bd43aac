// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Command cadencectl runs Cadence's resolution and sequencing offline.
//
//	cadencectl resolve records.json
//	cadencectl sequence pool.json --seed spotify:4uLU6hMCjMI75M1A2tKUQC --count 12
//	cadencectl camelot 8A 9B
//
// resolve reads a JSON array of tagged raw catalog records
// ({"source": "deezer", "payload": {...}}), normalizes and deduplicates
// them, and prints the canonical tracks. sequence reads a JSON array of
// canonical tracks and prints the queue the sequencer would play from the
// seed. camelot prints the harmonic distance between two Camelot keys.
package main
