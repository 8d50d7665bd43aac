// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    Chi route pattern so listener ids never become label values
  - ListenerContext: copies the {listenerID} URL parameter into the logging
    context so every log line of a request carries listener_id

Both are written as http.HandlerFunc wrappers; the api package adapts them
to Chi's func(http.Handler) http.Handler signature.
*/
package middleware
