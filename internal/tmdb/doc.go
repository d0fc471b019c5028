// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package tmdb provides a client for The Movie Database v3 API:
// genre-based discovery, trending lists, free-text search, and movie
// details. Calls are paced by a client-side rate limiter and can be
// wrapped in a circuit breaker for upstream resilience.
package tmdb
