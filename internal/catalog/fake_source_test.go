// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/cadence/internal/models"
)

// fakeSource is a scriptable Source for fan-out and breaker tests.
type fakeSource struct {
	name    models.Source
	delay   time.Duration
	records []models.RawRecord
	err     error
	panics  bool
	calls   atomic.Int32
}

func (f *fakeSource) Name() models.Source { return f.name }
func (f *fakeSource) Priority() int       { return f.name.Priority() }

func (f *fakeSource) Search(ctx context.Context, _ string) ([]models.RawRecord, error) {
	f.calls.Add(1)
	if f.panics {
		panic("boom")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func deezerRecord(id int64, title string) models.RawRecord {
	return models.RawRecord{
		Source:  models.SourceDeezer,
		Payload: &models.DeezerTrack{ID: id, Title: title, Artist: &models.DeezerArtist{Name: "Daft Punk"}},
	}
}
