// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
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

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// TMDB upstream metrics
	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"}, // "discover", "trending", "search", "details"
	)

	TMDBRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_request_errors_total",
			Help: "Total number of TMDB API request errors",
		},
		[]string{"operation", "error_type"}, // error_type: "auth", "status", "transport", "decode"
	)

	TMDBRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_rate_limit_waits_total",
			Help: "Total number of outbound requests delayed by the client-side rate limiter",
		},
	)

	// Circuit breaker metrics
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

	// Recommendation engine metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by mood and outcome",
		},
		[]string{"mood", "outcome"}, // outcome: "filtered", "fallback", "empty", "error"
	)

	RecommendationPoolSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_pool_size",
			Help:    "Number of candidate movies after merge and filtering",
			Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
		},
		[]string{"mood"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation pipeline duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"mood"},
	)
)

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

// RecordTMDBRequest records a TMDB upstream call metric
func RecordTMDBRequest(operation string, duration time.Duration, errorType string) {
	TMDBRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if errorType != "" {
		TMDBRequestErrors.WithLabelValues(operation, errorType).Inc()
	}
}

// RecordRecommendation records a recommendation pipeline outcome
func RecordRecommendation(mood, outcome string, poolSize int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(mood, outcome).Inc()
	RecommendationPoolSize.WithLabelValues(mood).Observe(float64(poolSize))
	RecommendationDuration.WithLabelValues(mood).Observe(duration.Seconds())
}
