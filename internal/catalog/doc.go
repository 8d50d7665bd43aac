// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package catalog talks to external music catalogs and projects their records
into canonical tracks.

# Sources

Each catalog is a Source with a fixed priority rank:

  - spotify (1): Web API /v1/search, OAuth2 client-credentials
  - deezer (2): public /search API
  - youtube (3): Data API v3 search + videos?part=contentDetails

Every HTTP client waits on a token-bucket limiter before each request and
retries 429 and 5xx responses with exponential backoff, honoring Retry-After.
NewSources wraps each enabled client in a CircuitBreakerSource so a failing
catalog is short-circuited instead of hammered.

# Fan-out

Gatherer.Gather searches all sources concurrently, one goroutine per source,
under an overall deadline. A source that errors or misses the deadline
contributes nothing; the failure is logged and counted, never returned.
Partial results are the expected outcome, not an error.

# Normalization

Normalize switches exhaustively over the tagged payload of a RawRecord.
Every field has a documented fallback ("Unknown Artist", empty cover,
duration 0), so a malformed record degrades metadata but never fails. Only a
record without a payload is rejected, with ErrNilRecord.
*/
package catalog
