// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/metrics"
	"github.com/reelmood/reelmood/internal/moods"
	"github.com/reelmood/reelmood/internal/tmdb"
)

// Source is the upstream the engine aggregates from. *tmdb.Client and
// *tmdb.BreakerClient both satisfy it.
type Source interface {
	DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*tmdb.Response, error)
	Trending(ctx context.Context, mediaType tmdb.MediaType, window tmdb.TimeWindow) (*tmdb.Response, error)
}

// Options holds engine tunables.
type Options struct {
	// MaxResults caps the ranked output length.
	MaxResults int
	// DiscoverPage is the page requested from the genre discover query.
	DiscoverPage int
	// TrendingMediaType and TrendingWindow parameterize the primary
	// trending fetch. On failure the engine makes a single fallback
	// attempt with the week window.
	TrendingMediaType tmdb.MediaType
	TrendingWindow    tmdb.TimeWindow
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		MaxResults:        20,
		DiscoverPage:      1,
		TrendingMediaType: tmdb.MediaTypeAll,
		TrendingWindow:    tmdb.TimeWindowDay,
	}
}

// invalidMoodLabel stands in for the mood label on metrics recorded
// before validation, keeping label cardinality bounded.
const invalidMoodLabel = "invalid"

// Engine aggregates genre-matched and trending titles into a ranked
// recommendation list for a mood. Stateless across requests; safe for
// concurrent use.
type Engine struct {
	source Source
	opts   Options
}

// NewEngine creates a recommendation engine over the given source.
func NewEngine(source Source, opts Options) *Engine {
	if opts.MaxResults < 1 {
		opts.MaxResults = DefaultOptions().MaxResults
	}
	if opts.DiscoverPage < 1 {
		opts.DiscoverPage = DefaultOptions().DiscoverPage
	}
	if opts.TrendingMediaType == "" {
		opts.TrendingMediaType = tmdb.MediaTypeAll
	}
	if opts.TrendingWindow == "" {
		opts.TrendingWindow = tmdb.TimeWindowDay
	}
	return &Engine{source: source, opts: opts}
}

// Recommend runs the aggregation pipeline for one mood: two concurrent
// upstream fetches, insertion-ordered dedup with genre-sourced items
// taking priority, relevance filtering with fallback to the full merged
// pool, then a stable rank by rating.
//
// A failed fetch degrades to an empty candidate set for that source; it
// never aborts the other fetch or the aggregation. Only an empty merged
// pool is an error (ErrNoContent).
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	mood, err := e.resolveMood(req.Mood)
	if err != nil {
		// The raw mood string is caller-controlled and unbounded; it
		// only becomes a metric label after validation.
		metrics.RecordRecommendation(invalidMoodLabel, "error", 0, time.Since(start))
		return nil, err
	}

	genreMovies, trendingMovies := e.fetchCandidates(ctx, mood)

	merged := mergeByID(genreMovies, trendingMovies)
	pool, outcome := relevantPool(merged, mood.GenrePreferences)

	if len(pool) == 0 {
		logging.Ctx(ctx).Warn().Str("mood", mood.ID).Msg("no candidates from either source")
		metrics.RecordRecommendation(mood.ID, "empty", 0, time.Since(start))
		return nil, ErrNoContent
	}

	rank(pool)

	top := pool
	if len(top) > e.opts.MaxResults {
		top = top[:e.opts.MaxResults]
	}

	logging.Ctx(ctx).Info().
		Str("mood", mood.ID).
		Int("genre_candidates", len(genreMovies)).
		Int("trending_candidates", len(trendingMovies)).
		Int("pool", len(pool)).
		Int("returned", len(top)).
		Msg("recommendations generated")
	metrics.RecordRecommendation(mood.ID, outcome, len(pool), time.Since(start))

	return &Response{
		Mood:    mood.ID,
		Movies:  top,
		Message: composeMessage(mood.Label, len(top), req.Preferences != ""),
		Count:   len(top),
	}, nil
}

// resolveMood validates the mood id against the enumerated set and
// resolves its registry entry.
func (e *Engine) resolveMood(id string) (moods.Mood, error) {
	valid := moods.ValidIDs()
	known := false
	for _, v := range valid {
		if v == id {
			known = true
			break
		}
	}
	if !known {
		return moods.Mood{}, &UnknownMoodError{Mood: id, ValidMoods: valid}
	}

	mood, ok := moods.Lookup(id)
	if !ok {
		return moods.Mood{}, ErrMoodConfigNotFound
	}
	return mood, nil
}

// fetchCandidates runs the genre and trending fetches concurrently.
// Each failure degrades to an empty set for that source.
func (e *Engine) fetchCandidates(ctx context.Context, mood moods.Mood) (genre, trending []tmdb.Movie) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		resp, err := e.source.DiscoverByGenres(ctx, mood.GenrePreferences, e.opts.DiscoverPage)
		if err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("mood", mood.ID).Msg("genre discover failed, continuing with trending only")
			return
		}
		genre = resp.Results
	}()

	go func() {
		defer wg.Done()
		resp, err := e.source.Trending(ctx, e.opts.TrendingMediaType, e.opts.TrendingWindow)
		if err == nil {
			trending = resp.Results
			return
		}
		logging.Ctx(ctx).Error().Err(err).Msg("trending fetch failed, retrying with week window")

		// Single policy-level fallback to the wider window, not a retry loop.
		resp, err = e.source.Trending(ctx, tmdb.MediaTypeAll, tmdb.TimeWindowWeek)
		if err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("trending fallback failed, continuing without trending")
			return
		}
		trending = resp.Results
	}()

	wg.Wait()
	return genre, trending
}

// mergeByID deduplicates by movie ID with insertion order preserved.
// Genre-sourced items are inserted first so they win ties; the first
// occurrence of an ID is kept, later duplicates are skipped.
func mergeByID(genre, trending []tmdb.Movie) []tmdb.Movie {
	seen := make(map[int]struct{}, len(genre)+len(trending))
	merged := make([]tmdb.Movie, 0, len(genre)+len(trending))

	for _, lists := range [][]tmdb.Movie{genre, trending} {
		for _, m := range lists {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}
	return merged
}

// relevantPool filters merged items to those sharing at least one genre
// with the mood. An empty filtered set falls back to the full merged
// set so an overly narrow filter never empties the result on its own.
// The returned outcome labels the path taken for metrics.
func relevantPool(merged []tmdb.Movie, genrePrefs []int) ([]tmdb.Movie, string) {
	prefs := make(map[int]struct{}, len(genrePrefs))
	for _, id := range genrePrefs {
		prefs[id] = struct{}{}
	}

	relevant := make([]tmdb.Movie, 0, len(merged))
	for _, m := range merged {
		for _, g := range m.GenreIDs {
			if _, ok := prefs[g]; ok {
				relevant = append(relevant, m)
				break
			}
		}
	}

	if len(relevant) > 0 {
		return relevant, "filtered"
	}
	return merged, "fallback"
}

// rank stable-sorts descending by vote average, ties broken by
// descending vote count. Stability preserves merge order among items
// with identical rating and count.
func rank(pool []tmdb.Movie) {
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].VoteAverage != pool[j].VoteAverage {
			return pool[i].VoteAverage > pool[j].VoteAverage
		}
		return pool[i].VoteCount > pool[j].VoteCount
	})
}

// composeMessage builds the explanation string. A preference hint only
// changes the phrasing.
func composeMessage(label string, count int, hasPreferences bool) string {
	lower := strings.ToLower(label)
	if hasPreferences {
		return fmt.Sprintf("Based on your %s mood and preferences, here are personalized recommendations.", lower)
	}
	return fmt.Sprintf("Based on your %s mood, here are %d carefully curated recommendations that match your current vibe.", lower, count)
}
