// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

// Package moods holds the static mood registry: ten moods, each mapped
// to an ordered list of TMDB genre IDs plus presentation data for
// clients. The registry is immutable after package init.
package moods
