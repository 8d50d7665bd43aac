// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cadence/config.yaml",
	"/etc/cadence/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8740,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Catalog: CatalogConfig{
			Deadline:    8 * time.Second,
			SearchLimit: 20,
			CacheSize:   512,
			CacheTTL:    10 * time.Minute,
			Spotify: SourceConfig{
				Enabled:      false,
				BaseURL:      "https://api.spotify.com",
				TokenURL:     "https://accounts.spotify.com/api/token",
				RateLimit:    5,
				Burst:        5,
				Timeout:      10 * time.Second,
				MaxRetries:   3,
				RetryBackoff: 500 * time.Millisecond,
			},
			Deezer: SourceConfig{
				Enabled:      true,
				BaseURL:      "https://api.deezer.com",
				RateLimit:    8,
				Burst:        10,
				Timeout:      10 * time.Second,
				MaxRetries:   3,
				RetryBackoff: 500 * time.Millisecond,
			},
			YouTube: SourceConfig{
				Enabled:      false,
				BaseURL:      "https://www.googleapis.com/youtube/v3",
				RateLimit:    2,
				Burst:        2,
				Timeout:      10 * time.Second,
				MaxRetries:   2,
				RetryBackoff: time.Second,
			},
		},
		Taste: TasteConfig{
			Decay:              0.99,
			ArtistMultiplier:   1.5,
			VectorWindow:       50,
			VectorRecencyDecay: 0.95,
			HistoryLimit:       500,
		},
		Recommend: RecommendConfig{
			Limit:              20,
			RecencyWindow:      20,
			TreasureAge:        30 * 24 * time.Hour,
			TreasureCompletion: 0.8,
			TreasurePositions:  []int{2, 7},
			TreasureScore:      1.0,
			Seed:               42,
		},
		Queue: QueueConfig{
			DiversityInterval: 5,
			ArtistWindow:      5,
		},
		Storage: StorageConfig{
			Path: "/data/cadence",
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
			FlushInterval:    time.Minute,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SPOTIFY_CLIENT_ID -> catalog.spotify.client_id, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.treasure_positions",
}

// processSliceFields converts comma-separated env values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"http_host":                 "server.host",
	"http_port":                 "server.port",
	"server_timeout":            "server.timeout",
	"server_shutdown_timeout":   "server.shutdown_timeout",
	"log_level":                 "logging.level",
	"log_format":                "logging.format",
	"log_caller":                "logging.caller",
	"cors_origins":              "security.cors_origins",
	"rate_limit_requests":       "security.rate_limit_reqs",
	"rate_limit_window":         "security.rate_limit_window",
	"disable_rate_limit":        "security.rate_limit_disabled",
	"catalog_deadline":          "catalog.deadline",
	"catalog_search_limit":      "catalog.search_limit",
	"catalog_cache_size":        "catalog.cache_size",
	"catalog_cache_ttl":         "catalog.cache_ttl",
	"taste_decay":               "taste.decay",
	"taste_vector_window":       "taste.vector_window",
	"taste_history_limit":       "taste.history_limit",
	"recommend_limit":           "recommend.limit",
	"recommend_recency_window":  "recommend.recency_window",
	"recommend_treasure_age":    "recommend.treasure_age",
	"recommend_treasure_slots":  "recommend.treasure_positions",
	"recommend_treasure_score":  "recommend.treasure_score",
	"recommend_seed":            "recommend.seed",
	"queue_diversity_interval":  "queue.diversity_interval",
	"queue_artist_window":       "queue.artist_window",
	"storage_path":              "storage.path",
	"storage_in_memory":         "storage.in_memory",
	"supervisor_flush_interval": "supervisor.flush_interval",
}

// sourceEnvFields maps per-source env suffixes to SourceConfig keys.
var sourceEnvFields = map[string]string{
	"enabled":       "enabled",
	"base_url":      "base_url",
	"token_url":     "token_url",
	"client_id":     "client_id",
	"client_secret": "client_secret",
	"api_key":       "api_key",
	"rate_limit":    "rate_limit",
	"burst":         "burst",
	"timeout":       "timeout",
	"max_retries":   "max_retries",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never pollute the config.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - SPOTIFY_CLIENT_ID -> catalog.spotify.client_id
//   - YOUTUBE_API_KEY -> catalog.youtube.api_key
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	for _, source := range []string{"spotify", "deezer", "youtube"} {
		suffix, ok := strings.CutPrefix(key, source+"_")
		if !ok {
			continue
		}
		if field, ok := sourceEnvFields[suffix]; ok {
			return "catalog." + source + "." + field
		}
	}

	return ""
}
