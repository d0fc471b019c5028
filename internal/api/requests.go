// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxRequestBodyBytes bounds request bodies; recommendation requests
// are a mood id and an optional short hint.
const maxRequestBodyBytes = 1 << 16

// RecommendationRequest is the POST /api/v1/recommendations body.
type RecommendationRequest struct {
	Mood        string
	Preferences string
}

// errInvalidMoodField reports a missing or non-string mood field.
var errInvalidMoodField = errors.New("mood is required and must be a string")

// decodeRecommendationRequest parses the request body, distinguishing
// "missing/non-string mood" from "unknown mood value" so the handler
// can message each precisely. Unknown moods are the engine's call.
func decodeRecommendationRequest(r *http.Request) (*RecommendationRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, errInvalidMoodField
	}

	var raw struct {
		Mood        json.RawMessage `json:"mood"`
		Preferences json.RawMessage `json:"preferences"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errInvalidMoodField
	}

	if len(raw.Mood) == 0 {
		return nil, errInvalidMoodField
	}

	var mood string
	if err := json.Unmarshal(raw.Mood, &mood); err != nil || mood == "" {
		return nil, errInvalidMoodField
	}

	// Preferences is an optional hint; a non-string value is dropped
	// rather than failing the whole request with a mood error.
	var preferences string
	if len(raw.Preferences) > 0 {
		if err := json.Unmarshal(raw.Preferences, &preferences); err != nil {
			preferences = ""
		}
	}

	return &RecommendationRequest{
		Mood:        mood,
		Preferences: preferences,
	}, nil
}

// SearchRequest is the GET /api/v1/search query contract.
type SearchRequest struct {
	Query string `validate:"required,min=1,max=200"`
	Page  int    `validate:"min=1,max=500"`
}
