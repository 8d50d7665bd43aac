// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"decay one", func(c *Config) { c.Taste.Decay = 1 }, "TASTE_DECAY"},
		{"decay zero", func(c *Config) { c.Taste.Decay = 0 }, "TASTE_DECAY"},
		{"vector window zero", func(c *Config) { c.Taste.VectorWindow = 0 }, "TASTE_VECTOR_WINDOW"},
		{"history below window", func(c *Config) { c.Taste.HistoryLimit = 10 }, "TASTE_HISTORY_LIMIT"},
		{"negative treasure slot", func(c *Config) { c.Recommend.TreasurePositions = []int{2, -1} }, "RECOMMEND_TREASURE_SLOTS"},
		{"spotify without credentials", func(c *Config) { c.Catalog.Spotify.Enabled = true }, "SPOTIFY_CLIENT_ID"},
		{"youtube without key", func(c *Config) { c.Catalog.YouTube.Enabled = true }, "YOUTUBE_API_KEY"},
		{"deezer bad url", func(c *Config) { c.Catalog.Deezer.BaseURL = "ftp://api.deezer.com" }, "DEEZER_BASE_URL"},
		{"deezer zero rate", func(c *Config) { c.Catalog.Deezer.RateLimit = 0 }, "DEEZER_RATE_LIMIT"},
		{"disabled source skips checks", func(c *Config) { c.Catalog.Deezer.Enabled = false; c.Catalog.Deezer.BaseURL = "" }, ""},
		{"rate limit disabled skips checks", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"rate limit requests zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"storage path missing", func(c *Config) { c.Storage.Path = "" }, "STORAGE_PATH"},
		{"storage in memory", func(c *Config) { c.Storage.Path = ""; c.Storage.InMemory = true }, ""},
		{"flush interval zero", func(c *Config) { c.Supervisor.FlushInterval = 0 }, "SUPERVISOR_FLUSH_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	valid := []string{"https://api.spotify.com", "http://127.0.0.1:9000", "https://www.googleapis.com/youtube/v3"}
	for _, u := range valid {
		if err := validateHTTPURL(u, "X"); err != nil {
			t.Errorf("validateHTTPURL(%q): %v", u, err)
		}
	}

	invalid := []string{"", "api.deezer.com", "ftp://host", "https://host/path?q=1"}
	for _, u := range invalid {
		if err := validateHTTPURL(u, "X"); err == nil {
			t.Errorf("validateHTTPURL(%q) expected error", u)
		}
	}
}
