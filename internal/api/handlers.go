// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/reelmood/reelmood/internal/logging"
	"github.com/reelmood/reelmood/internal/moods"
	"github.com/reelmood/reelmood/internal/recommend"
	"github.com/reelmood/reelmood/internal/tmdb"
	"github.com/reelmood/reelmood/internal/validation"
)

// Recommender runs the recommendation pipeline. *recommend.Engine
// satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// ContentSource is the subset of the TMDB client used directly by the
// passthrough handlers (trending, search, details).
type ContentSource interface {
	Trending(ctx context.Context, mediaType tmdb.MediaType, window tmdb.TimeWindow) (*tmdb.Response, error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.Response, error)
	MovieDetails(ctx context.Context, movieID int) (*tmdb.MovieDetails, error)
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	engine  Recommender
	source  ContentSource
	version string
}

// NewHandler creates the API handler set.
func NewHandler(engine Recommender, source ContentSource, version string) *Handler {
	return &Handler{
		engine:  engine,
		source:  source,
		version: version,
	}
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRecommendationRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Mood is required and must be a string")
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Mood:        req.Mood,
		Preferences: req.Preferences,
	})
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		Success: true,
		Mood:    resp.Mood,
		Movies:  resp.Movies,
		Message: resp.Message,
		Count:   resp.Count,
	})
}

// respondRecommendError maps engine errors to the wire contract.
func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	var unknownErr *recommend.UnknownMoodError

	switch {
	case errors.As(err, &unknownErr):
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid mood. Must be one of: %s", strings.Join(unknownErr.ValidMoods, ", ")))
	case errors.Is(err, recommend.ErrMoodConfigNotFound):
		respondError(w, http.StatusNotFound, "Mood configuration not found")
	case errors.Is(err, recommend.ErrNoContent):
		// Legitimate empty result, not a system error.
		respondEmptyRecommendations(w, "No recommendations available right now. Please try again later.")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation request failed")
		respondError(w, http.StatusInternalServerError, "Failed to generate recommendations")
	}
}

// Trending handles GET /api/v1/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("mediaType")
	if mediaType == "" {
		mediaType = string(tmdb.MediaTypeAll)
	}
	timeWindow := r.URL.Query().Get("timeWindow")
	if timeWindow == "" {
		timeWindow = string(tmdb.TimeWindowDay)
	}

	switch tmdb.MediaType(mediaType) {
	case tmdb.MediaTypeAll, tmdb.MediaTypeMovie, tmdb.MediaTypeTV:
	default:
		respondError(w, http.StatusBadRequest, `Invalid mediaType. Must be "movie", "tv", or "all"`)
		return
	}

	switch tmdb.TimeWindow(timeWindow) {
	case tmdb.TimeWindowDay, tmdb.TimeWindowWeek:
	default:
		respondError(w, http.StatusBadRequest, `Invalid timeWindow. Must be "day" or "week"`)
		return
	}

	resp, err := h.source.Trending(r.Context(), tmdb.MediaType(mediaType), tmdb.TimeWindow(timeWindow))
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("trending request failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch trending content")
		return
	}

	writeJSON(w, http.StatusOK, TrendingResponse{
		Success:      true,
		Data:         resp.Results,
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	})
}

// moodsResponse is the wire shape of the mood registry listing.
type moodsResponse struct {
	Success bool         `json:"success"`
	Data    []moods.Mood `json:"data"`
	Count   int          `json:"count"`
}

// Moods handles GET /api/v1/moods.
func (h *Handler) Moods(w http.ResponseWriter, _ *http.Request) {
	all := moods.All()
	writeJSON(w, http.StatusOK, moodsResponse{
		Success: true,
		Data:    all,
		Count:   len(all),
	})
}

// movieDetailsResponse is the wire shape of the movie details passthrough.
type movieDetailsResponse struct {
	Success bool               `json:"success"`
	Data    *tmdb.MovieDetails `json:"data"`
}

// MovieDetails handles GET /api/v1/movies/{id}.
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "Movie id must be a positive integer")
		return
	}

	details, err := h.source.MovieDetails(r.Context(), id)
	if err != nil {
		var statusErr *tmdb.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "Movie not found")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Int("movie_id", id).Msg("movie details request failed")
		respondError(w, http.StatusInternalServerError, "Failed to fetch movie details")
		return
	}

	writeJSON(w, http.StatusOK, movieDetailsResponse{Success: true, Data: details})
}

// Search handles GET /api/v1/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req := SearchRequest{
		Query: r.URL.Query().Get("query"),
		Page:  1,
	}
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		page, err := strconv.Atoi(pageParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Page must be an integer")
			return
		}
		req.Page = page
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	resp, err := h.source.SearchMovies(r.Context(), req.Query, req.Page)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("query", req.Query).Msg("search request failed")
		respondError(w, http.StatusInternalServerError, "Failed to search movies")
		return
	}

	writeJSON(w, http.StatusOK, TrendingResponse{
		Success:      true,
		Data:         resp.Results,
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	})
}

// healthResponse is the wire shape of the health endpoints.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Version: h.version})
}

// HealthLive handles GET /api/v1/health/live. The process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "alive"})
}

// HealthReady handles GET /api/v1/health/ready. The service has no
// warm-up dependencies; ready tracks liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ready"})
}
