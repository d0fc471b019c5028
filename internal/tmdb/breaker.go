// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/reelmood/reelmood/internal/config"
	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/metrics"
)

// BreakerClient wraps Client with a circuit breaker so a failing or slow
// TMDB upstream cannot stall every recommendation request. The breaker
// uses real time for its interval and timeout calculations; unit tests
// exercise the wrapped client directly.
type BreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewBreakerClient creates a TMDB client with circuit breaker protection.
// The circuit opens after a 60% failure rate over at least 10 requests,
// waits 2 minutes before probing, and allows 3 concurrent probes in
// half-open state.
func NewBreakerClient(cfg *config.TMDBConfig) *BreakerClient {
	client := NewClient(cfg)
	cbName := "tmdb-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &BreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// DiscoverByGenres fetches movies by genre with circuit breaker protection.
func (bc *BreakerClient) DiscoverByGenres(ctx context.Context, genreIDs []int, page int) (*Response, error) {
	result, err := bc.execute(func() (interface{}, error) {
		return bc.client.DiscoverByGenres(ctx, genreIDs, page)
	})
	return castResult[Response](result, err)
}

// Trending fetches the trending list with circuit breaker protection.
func (bc *BreakerClient) Trending(ctx context.Context, mediaType MediaType, window TimeWindow) (*Response, error) {
	result, err := bc.execute(func() (interface{}, error) {
		return bc.client.Trending(ctx, mediaType, window)
	})
	return castResult[Response](result, err)
}

// SearchMovies searches movies with circuit breaker protection.
func (bc *BreakerClient) SearchMovies(ctx context.Context, query string, page int) (*Response, error) {
	result, err := bc.execute(func() (interface{}, error) {
		return bc.client.SearchMovies(ctx, query, page)
	})
	return castResult[Response](result, err)
}

// MovieDetails fetches a movie record with circuit breaker protection.
func (bc *BreakerClient) MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	result, err := bc.execute(func() (interface{}, error) {
		return bc.client.MovieDetails(ctx, movieID)
	})
	return castResult[MovieDetails](result, err)
}

// execute wraps a TMDB call with circuit breaker accounting.
func (bc *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := bc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "success").Inc()
	return result, nil
}

// castResult safely type-casts the circuit breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
