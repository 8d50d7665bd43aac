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

// DeezerClient searches the public Deezer API. No credentials are needed.
type DeezerClient struct {
	baseURL string
	limit   int
	http    *requester
}

// NewDeezerClient creates a Deezer client.
//
//nolint:gocritic // SourceConfig is read once at construction
func NewDeezerClient(cfg config.SourceConfig, limit int) *DeezerClient {
	return &DeezerClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		limit:   clampLimit(limit, 100),
		http:    newRequester(models.SourceDeezer, cfg, nil),
	}
}

// Name implements Source.
func (c *DeezerClient) Name() models.Source { return models.SourceDeezer }

// Priority implements Source.
func (c *DeezerClient) Priority() int { return models.SourceDeezer.Priority() }

// deezerSearchResponse is the search envelope. Deezer reports quota and
// parameter errors with HTTP 200 and an error object.
type deezerSearchResponse struct {
	Data  []json.RawMessage `json:"data"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// Search implements Source.
func (c *DeezerClient) Search(ctx context.Context, query string) ([]models.RawRecord, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.limit))

	var resp deezerSearchResponse
	if err := c.http.getJSON(ctx, c.baseURL+"/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("deezer search: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("deezer search: %s (code %d): %s", resp.Error.Type, resp.Error.Code, resp.Error.Message)
	}
	return decodeItems(models.SourceDeezer, resp.Data), nil
}
