// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Taste      TasteConfig      `koanf:"taste"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Queue      QueueConfig      `koanf:"queue"`
	Storage    StorageConfig    `koanf:"storage"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CatalogConfig holds settings shared by all catalog sources plus one block per source.
type CatalogConfig struct {
	// Deadline bounds a whole multi-source search; slower sources contribute nothing.
	Deadline time.Duration `koanf:"deadline"`

	// SearchLimit is the number of results requested from each source.
	SearchLimit int `koanf:"search_limit"`

	// CacheSize and CacheTTL bound the resolved-search LRU cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`

	Spotify SourceConfig `koanf:"spotify"`
	Deezer  SourceConfig `koanf:"deezer"`
	YouTube SourceConfig `koanf:"youtube"`
}

// SourceConfig configures one catalog HTTP client.
//
// Environment Variables (SPOTIFY_ shown, DEEZER_ and YOUTUBE_ follow the same pattern):
//   - SPOTIFY_ENABLED: Enable the source (default: true for deezer, false otherwise)
//   - SPOTIFY_BASE_URL: API base URL
//   - SPOTIFY_TOKEN_URL: OAuth2 token endpoint (client-credentials flow)
//   - SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET: OAuth2 credentials
//   - YOUTUBE_API_KEY: Data API v3 key
//   - SPOTIFY_RATE_LIMIT: Requests per second (default: 5)
type SourceConfig struct {
	Enabled      bool          `koanf:"enabled"`
	BaseURL      string        `koanf:"base_url"`
	TokenURL     string        `koanf:"token_url"`
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	APIKey       string        `koanf:"api_key"`
	RateLimit    float64       `koanf:"rate_limit"`
	Burst        int           `koanf:"burst"`
	Timeout      time.Duration `koanf:"timeout"`
	MaxRetries   int           `koanf:"max_retries"`
	RetryBackoff time.Duration `koanf:"retry_backoff"`
}

// TasteConfig holds taste profile learning settings.
type TasteConfig struct {
	// Decay multiplies every genre and artist weight before each update. Must be in (0, 1).
	Decay float64 `koanf:"decay"`

	// ArtistMultiplier scales the interaction weight applied to the artist.
	ArtistMultiplier float64 `koanf:"artist_multiplier"`

	// VectorWindow is the number of most recent interactions used for the feature vector.
	VectorWindow int `koanf:"vector_window"`

	// VectorRecencyDecay is the per-rank weight falloff inside the vector window.
	VectorRecencyDecay float64 `koanf:"vector_recency_decay"`

	// HistoryLimit bounds the retained interaction log.
	HistoryLimit int `koanf:"history_limit"`
}

// RecommendConfig holds ranking and exploration settings.
type RecommendConfig struct {
	Limit              int           `koanf:"limit"`
	RecencyWindow      int           `koanf:"recency_window"`
	TreasureAge        time.Duration `koanf:"treasure_age"`
	TreasureCompletion float64       `koanf:"treasure_completion"`
	TreasurePositions  []int         `koanf:"treasure_positions"`
	TreasureScore      float64       `koanf:"treasure_score"`
	Seed               int64         `koanf:"seed"`
}

// QueueConfig holds smart-shuffle sequencing settings.
type QueueConfig struct {
	DiversityInterval int `koanf:"diversity_interval"`
	ArtistWindow      int `koanf:"artist_window"`
}

// StorageConfig holds BadgerDB persistence settings for taste profiles.
type StorageConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// SupervisorConfig holds suture tree and background service settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
	FlushInterval    time.Duration `koanf:"flush_interval"`
}

// Load reads configuration from defaults, an optional config file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
