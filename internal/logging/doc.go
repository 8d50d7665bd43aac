// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package logging provides centralized zerolog-based logging for Cadence.

A global logger is configured once at startup and every engine derives a
component logger from it:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logger := logging.WithComponent("discovery")
	logger.Warn().Str("source", "deezer").Err(err).Msg("source search failed")

Request-scoped logging picks up the request, correlation and listener IDs
stored by the API middleware:

	logging.Ctx(ctx).Info().Int("results", n).Msg("Search resolved")

# Configuration

Environment variables (mapped through the config package):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

# slog Bridge

The supervisor tree uses sutureslog, which requires *slog.Logger.
NewSlogLogger returns an slog.Logger whose handler writes through zerolog.

Always terminate log chains with .Msg() or .Send(); an unterminated event is
never emitted.
*/
package logging
