// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cadence/internal/config"
	"github.com/tomtom215/cadence/internal/logging"
	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

const (
	defaultMaxRetries  = 3
	defaultBackoff     = 500 * time.Millisecond
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)

// requester performs rate-limited GET requests with retry for one catalog.
type requester struct {
	source     models.Source
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

// newRequester builds a requester from per-source settings. A nil client
// gets a plain http.Client with the configured timeout.
//
//nolint:gocritic // SourceConfig is read once at construction
func newRequester(source models.Source, cfg config.SourceConfig, client *http.Client) *requester {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	if burst <= 0 {
		burst = 1
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	return &requester{
		source:     source,
		client:     client,
		limiter:    rate.NewLimiter(limit, burst),
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// getJSON fetches rawURL and decodes a 200 response body into out.
func (r *requester) getJSON(ctx context.Context, rawURL string, out any) error {
	resp, err := r.doWithRetry(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck // best-effort error context
		return fmt.Errorf("%s API returned status %d: %s", r.source, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", r.source, err)
	}
	return nil
}

// doWithRetry issues the request up to 1+maxRetries times. Network errors,
// 429 and 5xx responses are retried with exponential backoff; a Retry-After
// header overrides the computed delay.
func (r *requester) doWithRetry(ctx context.Context, rawURL string) (*http.Response, error) {
	attempts := r.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s rate limiter: %w", r.source, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create %s request: %w", r.source, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := r.client.Do(req)
		if ctxErr := ctx.Err(); ctxErr != nil {
			if resp != nil {
				_ = resp.Body.Close()
			}
			return nil, fmt.Errorf("%s request canceled: %w", r.source, ctxErr)
		}

		retryAfter, retry := shouldRetry(resp, err)
		if !retry {
			if err != nil {
				return nil, fmt.Errorf("%s request failed: %w", r.source, err)
			}
			return resp, nil
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
			_ = resp.Body.Close()
		}

		if attempt == attempts-1 {
			if err != nil {
				return nil, fmt.Errorf("%s request failed after %d attempts: %w", r.source, attempts, err)
			}
			return nil, fmt.Errorf("%s request failed after %d attempts: status %d", r.source, attempts, status)
		}

		metrics.RecordSourceRetry(string(r.source), status)
		logging.Debug().
			Str("source", string(r.source)).
			Int("attempt", attempt+1).
			Int("status", status).
			Err(err).
			Msg("Retrying catalog request")

		backoff := r.backoff * time.Duration(1<<attempt)
		if retryAfter > 0 {
			backoff = retryAfter
		}
		if err := sleepWithContext(ctx, backoff); err != nil {
			return nil, fmt.Errorf("%s request canceled: %w", r.source, err)
		}
	}

	return nil, fmt.Errorf("%s request failed after %d attempts", r.source, attempts)
}

func shouldRetry(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		return 0, true
	}
	if resp == nil {
		return 0, false
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return parseRetryAfter(resp.Header.Get("Retry-After")), true
	}
	return 0, false
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if when, err := http.ParseTime(value); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeItems turns a list of catalog JSON objects into RawRecords.
// Items that do not decode into the source's payload shape are skipped.
func decodeItems(source models.Source, items []json.RawMessage) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(items))
	for _, item := range items {
		payload, err := models.DecodePayload(source, item)
		if err != nil || payload == nil {
			logging.Debug().
				Str("source", string(source)).
				Err(err).
				Msg("Skipping undecodable catalog item")
			continue
		}
		records = append(records, models.RawRecord{
			Source:  source,
			Payload: payload,
			Raw:     append(json.RawMessage(nil), item...),
		})
	}
	return records
}
