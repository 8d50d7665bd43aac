// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/models"
)

// musicCategoryID is the YouTube video category for music.
const musicCategoryID = "10"

// YouTubeClient searches the YouTube Data API v3. A search call yields video
// ids; a second videos call fetches contentDetails so durations are known.
type YouTubeClient struct {
	baseURL string
	apiKey  string
	limit   int
	http    *requester
}

// NewYouTubeClient creates a YouTube client authenticated by API key.
//
//nolint:gocritic // SourceConfig is read once at construction
func NewYouTubeClient(cfg config.SourceConfig, limit int) *YouTubeClient {
	return &YouTubeClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limit:   clampLimit(limit, 50),
		http:    newRequester(models.SourceYouTube, cfg, nil),
	}
}

// Name implements Source.
func (c *YouTubeClient) Name() models.Source { return models.SourceYouTube }

// Priority implements Source.
func (c *YouTubeClient) Priority() int { return models.SourceYouTube.Priority() }

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []json.RawMessage `json:"items"`
}

// Search implements Source.
func (c *YouTubeClient) Search(ctx context.Context, query string) ([]models.RawRecord, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoCategoryId", musicCategoryID)
	params.Set("maxResults", strconv.Itoa(c.limit))
	params.Set("q", query)
	params.Set("key", c.apiKey)

	var search youtubeSearchResponse
	if err := c.http.getJSON(ctx, c.baseURL+"/search?"+params.Encode(), &search); err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	params = url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", c.apiKey)

	var videos youtubeVideosResponse
	if err := c.http.getJSON(ctx, c.baseURL+"/videos?"+params.Encode(), &videos); err != nil {
		return nil, fmt.Errorf("youtube videos: %w", err)
	}
	return decodeItems(models.SourceYouTube, videos.Items), nil
}
