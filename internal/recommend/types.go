// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reelmood/reelmood/internal/tmdb"
)

// Request carries the inputs for one recommendation call. Preferences
// is a free-form hint; it changes only the message phrasing, never the
// ranking. Documented current behavior.
type Request struct {
	Mood        string
	Preferences string
}

// Response is the result of a successful recommendation call.
type Response struct {
	Mood    string
	Movies  []tmdb.Movie
	Message string
	Count   int
}

// ErrMoodConfigNotFound reports a mood id that passed enumeration but
// has no registry entry. Defensive; should not occur.
var ErrMoodConfigNotFound = errors.New("mood configuration not found")

// ErrNoContent reports an empty candidate pool after both fetches.
// This is a user-facing empty result, not a system error.
var ErrNoContent = errors.New("no content available")

// UnknownMoodError reports a mood id outside the enumerated set.
type UnknownMoodError struct {
	Mood       string
	ValidMoods []string
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("invalid mood %q: must be one of: %s", e.Mood, strings.Join(e.ValidMoods, ", "))
}
