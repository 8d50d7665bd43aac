// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/models"
)

// SpotifyClient searches the Spotify Web API.
type SpotifyClient struct {
	baseURL string
	limit   int
	http    *requester
}

// NewSpotifyClient creates a Spotify client. When a client id is configured,
// requests carry an app token obtained via the OAuth2 client-credentials
// flow; tokens are cached and refreshed by the oauth2 transport.
//
//nolint:gocritic // SourceConfig is read once at construction
func NewSpotifyClient(cfg config.SourceConfig, limit int) *SpotifyClient {
	var client *http.Client
	if cfg.ClientID != "" {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		base := &http.Client{Timeout: timeout}
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		client = cc.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
		client.Timeout = timeout
	}

	return &SpotifyClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		limit:   clampLimit(limit, 50),
		http:    newRequester(models.SourceSpotify, cfg, client),
	}
}

// Name implements Source.
func (c *SpotifyClient) Name() models.Source { return models.SourceSpotify }

// Priority implements Source.
func (c *SpotifyClient) Priority() int { return models.SourceSpotify.Priority() }

type spotifySearchResponse struct {
	Tracks struct {
		Items []json.RawMessage `json:"items"`
	} `json:"tracks"`
}

// Search implements Source.
func (c *SpotifyClient) Search(ctx context.Context, query string) ([]models.RawRecord, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(c.limit))

	var resp spotifySearchResponse
	if err := c.http.getJSON(ctx, c.baseURL+"/v1/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}
	return decodeItems(models.SourceSpotify, resp.Tracks.Items), nil
}

func clampLimit(limit, maxLimit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
