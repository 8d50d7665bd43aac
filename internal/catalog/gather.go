// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cadence/internal/metrics"
	"github.com/tomtom215/cadence/internal/models"
)

// DefaultDeadline bounds a multi-source search when none is configured.
const DefaultDeadline = 8 * time.Second

// SourceResult is the outcome of one source's search.
type SourceResult struct {
	Source   models.Source
	Priority int
	Records  []models.RawRecord
	Err      error
	Duration time.Duration
}

// Gatherer fans a query out to every source concurrently.
type Gatherer struct {
	sources  []Source
	deadline time.Duration
	logger   zerolog.Logger
}

// NewGatherer creates a gatherer over sources. A non-positive deadline uses
// DefaultDeadline.
func NewGatherer(sources []Source, deadline time.Duration, logger zerolog.Logger) *Gatherer {
	if deadline <= 0 {
		deadline = DefaultDeadline
	}
	return &Gatherer{
		sources:  append([]Source(nil), sources...),
		deadline: deadline,
		logger:   logger,
	}
}

// Sources returns the configured sources in priority order.
func (g *Gatherer) Sources() []models.Source {
	names := make([]models.Source, 0, len(g.sources))
	for _, s := range g.sorted() {
		names = append(names, s.Name())
	}
	return names
}

// Gather searches every source and returns the successful results ordered
// by source priority. A source that fails or misses the deadline is logged
// and omitted; it never fails the whole gather. Gather returns when every
// source has answered or the deadline (or ctx) expires, whichever is first.
func (g *Gatherer) Gather(ctx context.Context, query string) []SourceResult {
	if len(g.sources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.deadline)
	defer cancel()

	// Buffered so late senders never block after the collector has gone.
	results := make(chan SourceResult, len(g.sources))
	for _, src := range g.sources {
		go func(src Source) {
			start := time.Now()
			records, err := searchSafely(ctx, src, query)
			results <- SourceResult{
				Source:   src.Name(),
				Priority: src.Priority(),
				Records:  records,
				Err:      err,
				Duration: time.Since(start),
			}
		}(src)
	}

	pending := make(map[models.Source]bool, len(g.sources))
	for _, src := range g.sources {
		pending[src.Name()] = true
	}

	succeeded := make([]SourceResult, 0, len(g.sources))
collect:
	for len(pending) > 0 {
		select {
		case r := <-results:
			delete(pending, r.Source)
			if r.Err != nil {
				g.recordFailure(r)
				continue
			}
			metrics.RecordSourceRequest(string(r.Source), "success", r.Duration, len(r.Records))
			succeeded = append(succeeded, r)
		case <-ctx.Done():
			break collect
		}
	}

	for source := range pending {
		g.recordFailure(SourceResult{
			Source:   source,
			Err:      ctx.Err(),
			Duration: g.deadline,
		})
	}

	sort.SliceStable(succeeded, func(i, j int) bool {
		return succeeded[i].Priority < succeeded[j].Priority
	})
	return succeeded
}

// Records flattens results into one slice, preserving order.
func Records(results []SourceResult) []models.RawRecord {
	n := 0
	for i := range results {
		n += len(results[i].Records)
	}
	out := make([]models.RawRecord, 0, n)
	for i := range results {
		out = append(out, results[i].Records...)
	}
	return out
}

//nolint:gocritic // SourceResult is only read
func (g *Gatherer) recordFailure(r SourceResult) {
	result := "error"
	if errors.Is(r.Err, context.DeadlineExceeded) {
		result = "timeout"
	}
	metrics.RecordSourceRequest(string(r.Source), result, r.Duration, 0)

	g.logger.Warn().
		Str("source", string(r.Source)).
		Dur("elapsed", r.Duration).
		Err(fmt.Errorf("%w: %w", ErrSourceUnavailable, r.Err)).
		Msg("Catalog source failed, continuing without it")
}

// searchSafely converts a panicking source into an error.
func searchSafely(ctx context.Context, src Source, query string) (records []models.RawRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("%s search panicked: %v", src.Name(), r)
		}
	}()
	return src.Search(ctx, query)
}

func (g *Gatherer) sorted() []Source {
	out := append([]Source(nil), g.sources...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}
