// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reelmood/reelmood/internal/config"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(&config.TMDBConfig{
		APIKey:    "0123456789abcdef0123456789abcdef",
		BaseURL:   srv.URL,
		Language:  "en-US",
		Timeout:   5 * time.Second,
		RateLimit: 100,
		RateBurst: 10,
	})
	return client, srv
}

func TestDiscoverByGenres(t *testing.T) {
	var gotPath, gotGenres, gotSort, gotKey string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenres = r.URL.Query().Get("with_genres")
		gotSort = r.URL.Query().Get("sort_by")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":42,"title":"Paddington","vote_average":8.2,"vote_count":1500,"genre_ids":[35,10751]}],"total_pages":1,"total_results":1}`))
	}))

	resp, err := client.DiscoverByGenres(context.Background(), []int{35, 10751, 16}, 1)
	if err != nil {
		t.Fatalf("DiscoverByGenres error: %v", err)
	}

	if gotPath != "/discover/movie" {
		t.Errorf("path = %q, want /discover/movie", gotPath)
	}
	if gotGenres != "35,10751,16" {
		t.Errorf("with_genres = %q, want 35,10751,16", gotGenres)
	}
	if gotSort != "popularity.desc" {
		t.Errorf("sort_by = %q, want popularity.desc", gotSort)
	}
	if gotKey == "" {
		t.Error("expected api_key query parameter")
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Paddington" {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}

func TestTrendingPath(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	}))

	if _, err := client.Trending(context.Background(), MediaTypeAll, TimeWindowDay); err != nil {
		t.Fatalf("Trending error: %v", err)
	}
	if gotPath != "/trending/all/day" {
		t.Errorf("path = %q, want /trending/all/day", gotPath)
	}
}

func TestSearchMovies(t *testing.T) {
	var gotQuery string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":7,"title":"Heat"}],"total_pages":1,"total_results":1}`))
	}))

	resp, err := client.SearchMovies(context.Background(), "heat", 1)
	if err != nil {
		t.Fatalf("SearchMovies error: %v", err)
	}
	if gotQuery != "heat" {
		t.Errorf("query = %q, want heat", gotQuery)
	}
	if len(resp.Results) != 1 {
		t.Errorf("expected 1 result, got %d", len(resp.Results))
	}
}

func TestMovieDetails(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","runtime":139,"genres":[{"id":18,"name":"Drama"}],"production_companies":[]}`))
	}))

	details, err := client.MovieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("MovieDetails error: %v", err)
	}
	if gotPath != "/movie/550" {
		t.Errorf("path = %q, want /movie/550", gotPath)
	}
	if details.Runtime != 139 || len(details.Genres) != 1 {
		t.Errorf("unexpected details: %+v", details)
	}
}

func TestAuthenticationError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))

	_, err := client.Trending(context.Background(), MediaTypeAll, TimeWindowDay)
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestStatusError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.DiscoverByGenres(context.Background(), []int{18}, 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", statusErr.StatusCode)
	}
}

func TestContextCancellation(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.Trending(ctx, MediaTypeAll, TimeWindowDay); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestDisplayTitle(t *testing.T) {
	movie := Movie{Title: "Dune"}
	if got := movie.DisplayTitle(); got != "Dune" {
		t.Errorf("DisplayTitle = %q, want Dune", got)
	}
	tv := Movie{Name: "Severance", MediaType: "tv"}
	if got := tv.DisplayTitle(); got != "Severance" {
		t.Errorf("DisplayTitle = %q, want Severance", got)
	}
}
