// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Source Metrics
	SourceRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_source_requests_total",
			Help: "Total number of catalog source searches",
		},
		[]string{"source", "result"}, // result: "success", "failure", "timeout"
	)

	SourceRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cadence_source_request_duration_seconds",
			Help:    "Duration of catalog source searches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		},
		[]string{"source"},
	)

	SourceRecordsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_source_records_total",
			Help: "Total number of raw records returned by catalog sources",
		},
		[]string{"source"},
	)

	SourceRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_source_retries_total",
			Help: "Total number of retried catalog HTTP requests",
		},
		[]string{"source", "status"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Search Cache Metrics
	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_search_cache_hits_total",
			Help: "Total number of search cache hits",
		},
	)

	SearchCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_search_cache_misses_total",
			Help: "Total number of search cache misses",
		},
	)

	// Resolver Metrics
	ResolverMerges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_resolver_merges_total",
			Help: "Total number of duplicate records merged into a canonical track",
		},
	)

	ResolverCanonicalTracks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cadence_resolver_canonical_tracks",
			Help:    "Number of canonical tracks per resolved result set",
			Buckets: []float64{0, 1, 5, 10, 20, 40, 80, 160},
		},
	)

	// Recommendation Metrics
	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_recommendations_total",
			Help: "Total number of recommendation lists generated",
		},
		[]string{"mode"}, // mode: "personalized", "cold_start"
	)

	TreasuresInjected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_treasures_injected_total",
			Help: "Total number of forgotten treasures spliced into recommendation lists",
		},
	)

	// Queue Metrics
	QueueSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_queue_selections_total",
			Help: "Total number of next-track selections",
		},
		[]string{"phase"}, // phase: "diversity", "continuity"
	)

	QueueResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_queue_resets_total",
			Help: "Total number of queue history resets after pool exhaustion",
		},
	)

	QueueSkips = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cadence_queue_skips_total",
			Help: "Total number of skipped queue tracks",
		},
	)

	// Taste Profile Metrics
	InteractionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_interactions_total",
			Help: "Total number of recorded listener interactions",
		},
		[]string{"type"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cadence_active_sessions",
			Help: "Current number of in-memory listener sessions",
		},
	)

	ProfileFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cadence_profile_flushes_total",
			Help: "Total number of taste profile persistence attempts",
		},
		[]string{"result"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordSourceRequest records one catalog search outcome.
func RecordSourceRequest(source, result string, duration time.Duration, records int) {
	SourceRequestsTotal.WithLabelValues(source, result).Inc()
	SourceRequestDuration.WithLabelValues(source).Observe(duration.Seconds())
	if records > 0 {
		SourceRecordsReturned.WithLabelValues(source).Add(float64(records))
	}
}

// RecordSourceRetry records a retried catalog request.
func RecordSourceRetry(source string, status int) {
	SourceRetries.WithLabelValues(source, statusLabel(status)).Inc()
}

// RecordSearchCache records a search cache lookup.
func RecordSearchCache(hit bool) {
	if hit {
		SearchCacheHits.Inc()
		return
	}
	SearchCacheMisses.Inc()
}

// RecordResolution records the outcome of one resolver pass.
func RecordResolution(merged, canonical int) {
	if merged > 0 {
		ResolverMerges.Add(float64(merged))
	}
	ResolverCanonicalTracks.Observe(float64(canonical))
}

// RecordRecommendations records a generated recommendation list.
func RecordRecommendations(coldStart bool, treasures int) {
	mode := "personalized"
	if coldStart {
		mode = "cold_start"
	}
	RecommendationsGenerated.WithLabelValues(mode).Inc()
	if treasures > 0 {
		TreasuresInjected.Add(float64(treasures))
	}
}

// RecordQueueSelection records a sequencer pick.
func RecordQueueSelection(diversity bool) {
	phase := "continuity"
	if diversity {
		phase = "diversity"
	}
	QueueSelections.WithLabelValues(phase).Inc()
}

// RecordQueueReset records a pool-exhaustion reset.
func RecordQueueReset() {
	QueueResets.Inc()
}

// RecordQueueSkip records a skipped queue track.
func RecordQueueSkip() {
	QueueSkips.Inc()
}

// RecordInteraction records a taste-profile interaction by type name.
func RecordInteraction(interactionType string) {
	InteractionsRecorded.WithLabelValues(interactionType).Inc()
}

// RecordProfileFlush records a persistence attempt.
func RecordProfileFlush(err error) {
	if err != nil {
		ProfileFlushes.WithLabelValues("failure").Inc()
		return
	}
	ProfileFlushes.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func statusLabel(status int) string {
	switch {
	case status == 429:
		return "429"
	case status >= 500:
		return "5xx"
	case status == 0:
		return "network"
	default:
		return "other"
	}
}
