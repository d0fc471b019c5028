// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package metrics defines Prometheus instrumentation for the service:
// API latency and throughput, TMDB upstream call health, circuit breaker
// state, and recommendation pipeline outcomes. Collectors are registered
// with promauto at package init and exposed on /metrics.
package metrics
