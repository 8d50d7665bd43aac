// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateRateLimits,
		c.validateCatalog,
		c.validateTaste,
		c.validateRecommend,
		c.validateQueue,
		c.validateStorage,
		c.validateSupervisor,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCatalog validates the shared catalog settings and each enabled source.
func (c *Config) validateCatalog() error {
	if c.Catalog.Deadline <= 0 {
		return fmt.Errorf("CATALOG_DEADLINE must be positive")
	}
	if c.Catalog.SearchLimit < 1 || c.Catalog.SearchLimit > 50 {
		return fmt.Errorf("CATALOG_SEARCH_LIMIT must be between 1 and 50")
	}
	if c.Catalog.CacheSize < 0 {
		return fmt.Errorf("CATALOG_CACHE_SIZE must not be negative")
	}

	if err := c.Catalog.Spotify.validate("SPOTIFY"); err != nil {
		return err
	}
	if c.Catalog.Spotify.Enabled && (c.Catalog.Spotify.ClientID == "" || c.Catalog.Spotify.ClientSecret == "") {
		return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required when SPOTIFY_ENABLED=true")
	}
	if err := c.Catalog.Deezer.validate("DEEZER"); err != nil {
		return err
	}
	if err := c.Catalog.YouTube.validate("YOUTUBE"); err != nil {
		return err
	}
	if c.Catalog.YouTube.Enabled && c.Catalog.YouTube.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required when YOUTUBE_ENABLED=true")
	}
	return nil
}

// validate checks one source block; disabled sources are not validated.
func (s SourceConfig) validate(prefix string) error {
	if !s.Enabled {
		return nil
	}
	if err := validateHTTPURL(s.BaseURL, prefix+"_BASE_URL"); err != nil {
		return err
	}
	if s.RateLimit <= 0 {
		return fmt.Errorf("%s_RATE_LIMIT must be positive", prefix)
	}
	if s.Burst < 1 {
		return fmt.Errorf("%s_BURST must be at least 1", prefix)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("%s_TIMEOUT must be positive", prefix)
	}
	if s.MaxRetries < 1 {
		return fmt.Errorf("%s_MAX_RETRIES must be at least 1", prefix)
	}
	return nil
}

// validateTaste enforces strictly decaying profile weights and positive windows.
func (c *Config) validateTaste() error {
	if c.Taste.Decay <= 0 || c.Taste.Decay >= 1 {
		return fmt.Errorf("TASTE_DECAY must be greater than 0 and less than 1")
	}
	if c.Taste.VectorRecencyDecay <= 0 || c.Taste.VectorRecencyDecay > 1 {
		return fmt.Errorf("taste.vector_recency_decay must be in (0, 1]")
	}
	if c.Taste.ArtistMultiplier <= 0 {
		return fmt.Errorf("taste.artist_multiplier must be positive")
	}
	if c.Taste.VectorWindow < 1 {
		return fmt.Errorf("TASTE_VECTOR_WINDOW must be at least 1")
	}
	if c.Taste.HistoryLimit < c.Taste.VectorWindow || c.Taste.HistoryLimit < c.Recommend.RecencyWindow {
		return fmt.Errorf("TASTE_HISTORY_LIMIT must cover both the vector window and the recency window")
	}
	return nil
}

// validateRecommend validates ranking and exploration settings.
func (c *Config) validateRecommend() error {
	if c.Recommend.Limit < 1 {
		return fmt.Errorf("RECOMMEND_LIMIT must be at least 1")
	}
	if c.Recommend.RecencyWindow < 0 {
		return fmt.Errorf("RECOMMEND_RECENCY_WINDOW must not be negative")
	}
	if c.Recommend.TreasureAge < 0 {
		return fmt.Errorf("RECOMMEND_TREASURE_AGE must not be negative")
	}
	if c.Recommend.TreasureCompletion < 0 || c.Recommend.TreasureCompletion > 1 {
		return fmt.Errorf("recommend.treasure_completion must be between 0 and 1")
	}
	for _, pos := range c.Recommend.TreasurePositions {
		if pos < 0 {
			return fmt.Errorf("RECOMMEND_TREASURE_SLOTS must not contain negative positions")
		}
	}
	return nil
}

// validateQueue validates sequencer settings.
func (c *Config) validateQueue() error {
	if c.Queue.DiversityInterval < 1 {
		return fmt.Errorf("QUEUE_DIVERSITY_INTERVAL must be at least 1")
	}
	if c.Queue.ArtistWindow < 0 {
		return fmt.Errorf("QUEUE_ARTIST_WINDOW must not be negative")
	}
	return nil
}

// validateStorage validates persistence settings.
func (c *Config) validateStorage() error {
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required unless STORAGE_IN_MEMORY=true")
	}
	return nil
}

// validateSupervisor validates supervisor tree settings.
func (c *Config) validateSupervisor() error {
	if c.Supervisor.FlushInterval <= 0 {
		return fmt.Errorf("SUPERVISOR_FLUSH_INTERVAL must be positive")
	}
	if c.Supervisor.FailureThreshold <= 0 {
		return fmt.Errorf("supervisor.failure_threshold must be positive")
	}
	return nil
}
