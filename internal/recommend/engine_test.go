// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reelmood/reelmood/internal/metrics"
	"github.com/reelmood/reelmood/internal/tmdb"
)

// mockSource is a hand-rolled Source with per-call results and errors.
type mockSource struct {
	discoverResp *tmdb.Response
	discoverErr  error

	trendingResp *tmdb.Response
	trendingErr  error

	// fallbackResp/fallbackErr serve the second Trending call when set.
	fallbackResp *tmdb.Response
	fallbackErr  error

	trendingCalls []tmdb.TimeWindow
}

func (m *mockSource) DiscoverByGenres(_ context.Context, _ []int, _ int) (*tmdb.Response, error) {
	return m.discoverResp, m.discoverErr
}

func (m *mockSource) Trending(_ context.Context, _ tmdb.MediaType, window tmdb.TimeWindow) (*tmdb.Response, error) {
	m.trendingCalls = append(m.trendingCalls, window)
	if len(m.trendingCalls) > 1 && (m.fallbackResp != nil || m.fallbackErr != nil) {
		return m.fallbackResp, m.fallbackErr
	}
	return m.trendingResp, m.trendingErr
}

func movie(id int, title string, rating float64, votes int, genres ...int) tmdb.Movie {
	return tmdb.Movie{
		ID:          id,
		Title:       title,
		VoteAverage: rating,
		VoteCount:   votes,
		GenreIDs:    genres,
	}
}

func respOf(movies ...tmdb.Movie) *tmdb.Response {
	return &tmdb.Response{Page: 1, Results: movies, TotalPages: 1, TotalResults: len(movies)}
}

func newTestEngine(src Source) *Engine {
	return NewEngine(src, DefaultOptions())
}

func TestRecommendUnknownMood(t *testing.T) {
	e := newTestEngine(&mockSource{})

	_, err := e.Recommend(context.Background(), Request{Mood: "bored"})
	var unknownErr *UnknownMoodError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownMoodError, got %v", err)
	}
	if len(unknownErr.ValidMoods) != 10 {
		t.Errorf("expected 10 valid moods in error, got %d", len(unknownErr.ValidMoods))
	}
	if !strings.Contains(unknownErr.Error(), "happy") {
		t.Errorf("expected error to enumerate valid moods, got %q", unknownErr.Error())
	}
}

func TestRecommendEmptyMood(t *testing.T) {
	e := newTestEngine(&mockSource{})

	_, err := e.Recommend(context.Background(), Request{Mood: ""})
	var unknownErr *UnknownMoodError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownMoodError for empty mood, got %v", err)
	}
}

func TestRecommendInvalidMoodMetricCardinality(t *testing.T) {
	e := newTestEngine(&mockSource{})

	before := testutil.CollectAndCount(metrics.RecommendationsTotal)
	for i := 0; i < 50; i++ {
		_, err := e.Recommend(context.Background(), Request{Mood: fmt.Sprintf("mood-%d", i)})
		var unknownErr *UnknownMoodError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("expected UnknownMoodError, got %v", err)
		}
	}
	after := testutil.CollectAndCount(metrics.RecommendationsTotal)

	// Unvalidated mood strings share one placeholder series instead of
	// minting a series per unique value.
	if after > before+1 {
		t.Errorf("expected at most one new series for invalid moods, got %d -> %d", before, after)
	}
	if got := testutil.ToFloat64(metrics.RecommendationsTotal.WithLabelValues("invalid", "error")); got < 50 {
		t.Errorf("expected invalid-mood errors on the placeholder series, got %f", got)
	}
}

func TestRecommendMergeDedupPriority(t *testing.T) {
	// ID 1 appears in both sources; the genre-sourced copy must win.
	src := &mockSource{
		discoverResp: respOf(
			movie(1, "Genre Copy", 7.0, 100, 35),
			movie(2, "Genre Only", 8.0, 200, 35),
		),
		trendingResp: respOf(
			movie(1, "Trending Copy", 9.9, 999, 35),
			movie(3, "Trending Only", 6.0, 50, 35),
		),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if resp.Count != 3 {
		t.Fatalf("expected 3 movies after dedup, got %d", resp.Count)
	}
	for _, m := range resp.Movies {
		if m.ID == 1 && m.Title != "Genre Copy" {
			t.Errorf("expected genre-sourced copy of ID 1 to win, got %q", m.Title)
		}
	}
}

func TestRecommendRankingOrder(t *testing.T) {
	src := &mockSource{
		discoverResp: respOf(
			movie(1, "Low", 6.0, 100, 35),
			movie(2, "High", 9.0, 100, 35),
			movie(3, "TieMoreVotes", 8.0, 500, 35),
			movie(4, "TieFewerVotes", 8.0, 100, 35),
		),
		trendingResp: respOf(),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	wantOrder := []string{"High", "TieMoreVotes", "TieFewerVotes", "Low"}
	for i, want := range wantOrder {
		if resp.Movies[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, resp.Movies[i].Title, want)
		}
	}
}

func TestRecommendStableSortPreservesMergeOrder(t *testing.T) {
	// Identical rating and count: merge order must be retained.
	src := &mockSource{
		discoverResp: respOf(
			movie(1, "First", 7.5, 300, 35),
			movie(2, "Second", 7.5, 300, 35),
			movie(3, "Third", 7.5, 300, 35),
		),
		trendingResp: respOf(),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	for i, want := range []string{"First", "Second", "Third"} {
		if resp.Movies[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, resp.Movies[i].Title, want)
		}
	}
}

func TestRecommendRelevanceFilter(t *testing.T) {
	// Happy = genres 35, 10751, 16, 10402. Horror-only titles drop.
	src := &mockSource{
		discoverResp: respOf(movie(1, "Comedy", 7.0, 100, 35)),
		trendingResp: respOf(
			movie(2, "Horror", 9.0, 900, 27),
			movie(3, "NoGenres", 9.5, 950),
		),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if resp.Count != 1 || resp.Movies[0].Title != "Comedy" {
		t.Errorf("expected only the comedy to survive the filter, got %+v", resp.Movies)
	}
}

func TestRecommendFallbackToUnfiltered(t *testing.T) {
	// Nothing matches the mood's genres; the full merged pool is used.
	src := &mockSource{
		discoverResp: respOf(),
		trendingResp: respOf(
			movie(1, "Horror", 7.0, 100, 27),
			movie(2, "Thriller", 8.0, 200, 53),
		),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if resp.Count != 2 {
		t.Errorf("expected full merged pool on empty filter, got %d movies", resp.Count)
	}
	if resp.Movies[0].Title != "Thriller" {
		t.Errorf("expected ranking applied to fallback pool, got %q first", resp.Movies[0].Title)
	}
}

func TestRecommendGenreFetchFailureDegrades(t *testing.T) {
	src := &mockSource{
		discoverErr:  errors.New("upstream down"),
		trendingResp: respOf(movie(1, "Trending Comedy", 7.0, 100, 35)),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("expected trending result to survive, got %d", resp.Count)
	}
}

func TestRecommendTrendingFallbackWindow(t *testing.T) {
	src := &mockSource{
		discoverResp: respOf(),
		trendingErr:  errors.New("day window down"),
		fallbackResp: respOf(movie(1, "Weekly Comedy", 7.0, 100, 35)),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("expected fallback success, got error: %v", err)
	}
	if resp.Count != 1 || resp.Movies[0].Title != "Weekly Comedy" {
		t.Errorf("expected fallback window result, got %+v", resp.Movies)
	}
	if len(src.trendingCalls) != 2 || src.trendingCalls[1] != tmdb.TimeWindowWeek {
		t.Errorf("expected single fallback to week window, calls: %v", src.trendingCalls)
	}
}

func TestRecommendBothSourcesFail(t *testing.T) {
	src := &mockSource{
		discoverErr: errors.New("discover down"),
		trendingErr: errors.New("trending down"),
		fallbackErr: errors.New("fallback down"),
	}
	e := newTestEngine(src)

	_, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestRecommendTruncatesToMaxResults(t *testing.T) {
	movies := make([]tmdb.Movie, 0, 30)
	for i := 1; i <= 30; i++ {
		movies = append(movies, movie(i, "Title", float64(i%10), i, 35))
	}
	src := &mockSource{
		discoverResp: respOf(movies...),
		trendingResp: respOf(),
	}
	e := newTestEngine(src)

	resp, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if resp.Count != 20 || len(resp.Movies) != 20 {
		t.Errorf("expected exactly 20 movies, got %d", resp.Count)
	}
}

func TestRecommendMessagePhrasing(t *testing.T) {
	src := &mockSource{
		discoverResp: respOf(movie(1, "Comedy", 7.0, 100, 35)),
		trendingResp: respOf(),
	}
	e := newTestEngine(src)

	plain, err := e.Recommend(context.Background(), Request{Mood: "happy"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if !strings.Contains(plain.Message, "happy mood, here are 1 carefully curated") {
		t.Errorf("unexpected plain message: %q", plain.Message)
	}

	hinted, err := e.Recommend(context.Background(), Request{Mood: "happy", Preferences: "something funny"})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if !strings.Contains(hinted.Message, "happy mood and preferences") {
		t.Errorf("unexpected hinted message: %q", hinted.Message)
	}
	// Hint changes phrasing only; the movies are identical.
	if hinted.Count != plain.Count || hinted.Movies[0].ID != plain.Movies[0].ID {
		t.Error("preference hint must not change ranking")
	}
}

func TestMergeByID(t *testing.T) {
	genre := []tmdb.Movie{movie(1, "A", 7, 1, 35), movie(2, "B", 7, 1, 35)}
	trending := []tmdb.Movie{movie(2, "B-dup", 9, 9, 35), movie(3, "C", 7, 1, 35)}

	merged := mergeByID(genre, trending)
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged movies, got %d", len(merged))
	}
	if merged[0].Title != "A" || merged[1].Title != "B" || merged[2].Title != "C" {
		t.Errorf("unexpected merge order: %+v", merged)
	}
}
