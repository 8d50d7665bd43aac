// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics in Prometheus text format:

	curl http://localhost:8740/metrics

# Available Metrics

Catalog Sources:
  - cadence_source_requests_total: Searches per source (counter)
    Labels: source, result
  - cadence_source_request_duration_seconds: Search latency (histogram)
  - cadence_source_records_total: Raw records returned (counter)
  - cadence_source_retries_total: Retried HTTP requests (counter)
    Labels: source, status

Circuit Breakers:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

Discovery:
  - cadence_search_cache_hits_total / cadence_search_cache_misses_total
  - cadence_resolver_merges_total
  - cadence_resolver_canonical_tracks (histogram)
  - cadence_recommendations_total: Labels mode (personalized, cold_start)
  - cadence_treasures_injected_total

Queue and Profiles:
  - cadence_queue_selections_total: Labels phase (diversity, continuity)
  - cadence_queue_resets_total, cadence_queue_skips_total
  - cadence_interactions_total: Labels type
  - cadence_active_sessions (gauge)
  - cadence_profile_flushes_total: Labels result

HTTP:
  - api_requests_total: Labels method, endpoint, status_code
  - api_request_duration_seconds (histogram)
  - api_active_requests (gauge)

# Example Alerts

	groups:
	  - name: cadence
	    rules:
	      - alert: CircuitBreakerOpen
	        expr: circuit_breaker_state == 2
	        for: 5m
	      - alert: CatalogSourceFailing
	        expr: rate(cadence_source_requests_total{result="failure"}[5m]) > 0.5
	        for: 10m
*/
package metrics
