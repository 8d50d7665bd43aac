// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package services provides suture.Service wrappers for Cadence's
// long-running components: the API server, the taste profile flusher and
// periodic maintenance tasks.
//
// Every service returns ctx.Err() on cancellation so the supervisor can
// tell a requested stop from a crash.
package services
