// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/tmdb"
)

// RecommendationResponse is the wire shape of a successful
// recommendation call. The flat success/movies/message envelope is the
// published contract; success:false with status 200 marks a legitimate
// empty result rather than a system error.
type RecommendationResponse struct {
	Success bool         `json:"success"`
	Mood    string       `json:"mood,omitempty"`
	Movies  []tmdb.Movie `json:"movies"`
	Message string       `json:"message,omitempty"`
	Count   int          `json:"count"`
}

// ErrorResponse is the wire shape of a failed call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// TrendingResponse is the wire shape of the trending listing.
type TrendingResponse struct {
	Success      bool         `json:"success"`
	Data         []tmdb.Movie `json:"data"`
	Page         int          `json:"page"`
	TotalPages   int          `json:"totalPages"`
	TotalResults int          `json:"totalResults"`
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; all we can do is log.
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError writes the error envelope with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// EmptyRecommendationsResponse is the wire shape of a legitimate empty
// result: status 200, success false, an explanatory error string, and
// an empty movie list.
type EmptyRecommendationsResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Movies  []tmdb.Movie `json:"movies"`
}

// respondEmptyRecommendations writes the empty-result shape.
func respondEmptyRecommendations(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, EmptyRecommendationsResponse{
		Success: false,
		Error:   message,
		Movies:  []tmdb.Movie{},
	})
}
