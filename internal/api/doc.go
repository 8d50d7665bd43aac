// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package api exposes the discovery, taste, recommendation and queue engines
over HTTP using the Chi router.

Routes (all under /api/v1 unless noted):

	GET    /health                                   liveness plus source list
	GET    /context                                  current listening context
	GET    /search?q=                                multi-catalog resolved search
	POST   /match                                    best confident cross-catalog match
	POST   /listeners/{listenerID}/interactions      record an interaction or playback report
	GET    /listeners/{listenerID}/profile           taste profile and vector
	DELETE /listeners/{listenerID}/profile           forget a listener
	POST   /listeners/{listenerID}/recommendations   rank an explicit pool or a search
	POST   /listeners/{listenerID}/queue             start (or resume) a smart-shuffle queue
	GET    /listeners/{listenerID}/queue             queue state
	GET    /listeners/{listenerID}/queue/next        advance the queue
	POST   /listeners/{listenerID}/queue/skip        skip a track
	GET    /metrics                                  Prometheus (root, not versioned)

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "BAD_REQUEST", "message": "...", "request_id": "..."}, "meta": {...}}

Middleware order: request ID with logging context, RealIP, Recoverer, CORS,
then per-route-group rate limiting, security headers and Prometheus metrics.
*/
package api
