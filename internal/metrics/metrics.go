// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package metrics defines the Prometheus metrics exported by CourseCompass.
//
// Metrics are package-level promauto collectors registered on the default
// registry and exposed by promhttp on /metrics. Callers use the Record*
// helpers rather than touching collectors directly, so label sets stay
// consistent.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
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
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of engine operations by outcome",
		},
		[]string{"operation", "status"}, // status: "success", "error"
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Engine operation duration in seconds, embedding included",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of results returned per operation",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50, 100},
		},
		[]string{"operation"},
	)

	// Embedding Service Metrics
	EmbeddingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedding_requests_total",
			Help: "Total number of embedding service calls by outcome",
		},
		[]string{"status"}, // status: "success", "error", "rejected"
	)

	EmbeddingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "embedding_request_duration_seconds",
			Help:    "Embedding service call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	EmbeddingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embedding_cache_lookups_total",
			Help: "Query embedding cache lookups by result",
		},
		[]string{"result"}, // result: "hit", "miss"
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
		[]string{"name", "result"}, // result: "success", "failure", "rejected", "excluded"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogCourses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_courses",
			Help: "Number of courses in the loaded catalog",
		},
	)

	CatalogEmbeddings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_embeddings",
			Help: "Number of courses with an embedding vector",
		},
	)

	PrerequisiteEdges = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "prerequisite_edges",
			Help: "Number of parsed requirement edges by validity",
		},
		[]string{"validity"}, // validity: "valid", "dangling"
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time to load the course dataset by source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"source"}, // source: "json", "snapshot"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one engine operation.
func RecordRecommendation(operation string, duration time.Duration, results int, err error) {
	if err != nil {
		RecommendRequests.WithLabelValues(operation, "error").Inc()
		return
	}
	RecommendRequests.WithLabelValues(operation, "success").Inc()
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
	RecommendResults.WithLabelValues(operation).Observe(float64(results))
}

// RecordEmbedding records one embedding service call. rejected is true when
// the call never left the process (breaker open or limiter wait aborted).
func RecordEmbedding(duration time.Duration, err error, rejected bool) {
	switch {
	case rejected:
		EmbeddingRequests.WithLabelValues("rejected").Inc()
		return
	case err != nil:
		EmbeddingRequests.WithLabelValues("error").Inc()
	default:
		EmbeddingRequests.WithLabelValues("success").Inc()
	}
	EmbeddingDuration.Observe(duration.Seconds())
}

// RecordEmbeddingCache counts one query embedding cache lookup.
func RecordEmbeddingCache(hit bool) {
	if hit {
		EmbeddingCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	EmbeddingCacheLookups.WithLabelValues("miss").Inc()
}

// RecordBreakerResult counts a call through the named breaker.
func RecordBreakerResult(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition records a state change. States use the gobreaker
// names: "closed", "half-open", "open".
func RecordBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// SetCatalogStats publishes the sizes of the loaded data.
func SetCatalogStats(courses, embeddings, validEdges, danglingEdges int) {
	CatalogCourses.Set(float64(courses))
	CatalogEmbeddings.Set(float64(embeddings))
	PrerequisiteEdges.WithLabelValues("valid").Set(float64(validEdges))
	PrerequisiteEdges.WithLabelValues("dangling").Set(float64(danglingEdges))
}

// RecordDatasetLoad records how long loading took from source.
func RecordDatasetLoad(source string, duration time.Duration) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}
