// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/reelmood/reelmood/internal/config"
	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/metrics"
)

// ErrAuthentication indicates TMDB rejected the configured API key.
var ErrAuthentication = errors.New("tmdb: authentication failed")

// StatusError reports a non-2xx response from TMDB.
type StatusError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s returned %s", e.Endpoint, e.Status)
}

// Client is an HTTP client for The Movie Database v3 API. The API key
// is injected at construction; Client never reads process environment.
// Outbound calls are paced by a token-bucket limiter to stay inside
// TMDB's request limits.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	language   string
}

// NewClient creates a TMDB client from validated configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
	}
}

// DiscoverByGenres fetches movies matching any of the given genre IDs,
// sorted by descending popularity.
func (c *Client) DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*Response, error) {
	ids := make([]string, len(genreIDs))
	for i, id := range genreIDs {
		ids[i] = strconv.Itoa(id)
	}
	params := url.Values{}
	params.Set("with_genres", strings.Join(ids, ","))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))

	var resp Response
	if err := c.get(ctx, "discover", "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Trending fetches the trending list for the given media type and window.
func (c *Client) Trending(ctx context.Context, mediaType MediaType, window TimeWindow) (*Response, error) {
	endpoint := fmt.Sprintf("/trending/%s/%s", mediaType, window)

	var resp Response
	if err := c.get(ctx, "trending", endpoint, url.Values{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchMovies searches movies by free-text query.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Response, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var resp Response
	if err := c.get(ctx, "search", "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieDetails fetches the full record for a single movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	endpoint := fmt.Sprintf("/movie/%d", movieID)

	var details MovieDetails
	if err := c.get(ctx, "details", endpoint, url.Values{}, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// get performs a GET request against the TMDB API and decodes the JSON
// response into out. The operation label feeds metrics.
func (c *Client) get(ctx context.Context, operation, endpoint string, params url.Values, out interface{}) error {
	if c.limiter.Tokens() < 1 {
		metrics.TMDBRateLimitWaits.Inc()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tmdb: rate limiter wait: %w", err)
	}

	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("tmdb: creating request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		metrics.RecordTMDBRequest(operation, latency, "transport")
		return fmt.Errorf("tmdb: requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	logging.Ctx(ctx).Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", latency).
		Msg("tmdb request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		metrics.RecordTMDBRequest(operation, latency, "auth")
		return fmt.Errorf("tmdb: %s: %w", endpoint, ErrAuthentication)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.RecordTMDBRequest(operation, latency, "status")
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   endpoint,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordTMDBRequest(operation, latency, "decode")
		return fmt.Errorf("tmdb: decoding %s response: %w", endpoint, err)
	}

	metrics.RecordTMDBRequest(operation, latency, "")
	return nil
}
