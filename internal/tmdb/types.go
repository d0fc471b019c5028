// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package tmdb

// MediaType selects which catalog a trending query covers.
type MediaType string

const (
	MediaTypeAll   MediaType = "all"
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// TimeWindow selects the trending aggregation window.
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// Movie is a single title as returned by TMDB list endpoints. Trending
// can return TV entries, which carry name/first_air_date instead of
// title/release_date.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
	MediaType    string  `json:"media_type,omitempty"`
	Name         string  `json:"name,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

// DisplayTitle returns the movie title, falling back to the TV series
// name for trending entries of media_type "tv".
func (m *Movie) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// Response is the paginated list envelope used by discover, trending,
// and search endpoints.
type Response struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a named genre as returned by the movie details endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany is a studio credit on the movie details endpoint.
type ProductionCompany struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	LogoPath *string `json:"logo_path"`
}

// MovieDetails extends Movie with the full-record fields of /movie/{id}.
type MovieDetails struct {
	Movie
	Genres              []Genre             `json:"genres"`
	Runtime             int                 `json:"runtime,omitempty"`
	Tagline             string              `json:"tagline,omitempty"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
}
