// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config is the root configuration for the Reelmood service.
// Values are layered: built-in defaults, then an optional YAML file,
// then environment variables (highest priority).
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// TMDBConfig holds settings for The Movie Database upstream API.
type TMDBConfig struct {
	APIKey   string        `koanf:"api_key"`
	BaseURL  string        `koanf:"base_url"`
	Language string        `koanf:"language"`
	Timeout  time.Duration `koanf:"timeout"`
	// RateLimit caps outbound requests per second to stay inside
	// TMDB's published limits.
	RateLimit float64 `koanf:"rate_limit"`
	// RateBurst is the token bucket burst size for the rate limiter.
	RateBurst int `koanf:"rate_burst"`
}

// RecommendConfig holds recommendation engine tunables.
type RecommendConfig struct {
	MaxResults        int    `koanf:"max_results"`
	DiscoverPage      int    `koanf:"discover_page"`
	TrendingMediaType string `koanf:"trending_media_type"`
	TrendingWindow    string `koanf:"trending_window"`
}

// SecurityConfig holds rate limiting and CORS settings for the API surface.
type SecurityConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// minAPIKeyLength rejects obviously truncated TMDB keys before any
// upstream call is attempted. Real v3 keys are 32 hex characters.
const minAPIKeyLength = 10

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	key := strings.TrimSpace(c.TMDB.APIKey)
	if key == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	if len(key) < minAPIKeyLength {
		return fmt.Errorf("TMDB_API_KEY appears invalid: expected at least %d characters, got %d", minAPIKeyLength, len(key))
	}
	c.TMDB.APIKey = key

	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got: %s", c.TMDB.Timeout)
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must be positive, got: %f", c.TMDB.RateLimit)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxResults < 1 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must be at least 1, got: %d", c.Recommend.MaxResults)
	}
	switch c.Recommend.TrendingWindow {
	case "day", "week":
	default:
		return fmt.Errorf("RECOMMEND_TRENDING_WINDOW must be \"day\" or \"week\", got: %s", c.Recommend.TrendingWindow)
	}
	switch c.Recommend.TrendingMediaType {
	case "all", "movie", "tv":
	default:
		return fmt.Errorf("RECOMMEND_TRENDING_MEDIA_TYPE must be \"all\", \"movie\", or \"tv\", got: %s", c.Recommend.TrendingMediaType)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, got: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"json\" or \"console\", got: %s", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS
// services. Validates scheme (http/https) and host presence.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}

// Addr returns the host:port the HTTP server should bind to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
