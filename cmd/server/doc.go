// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package main is the entry point for the Cadence server.

Cadence searches Spotify, Deezer and YouTube in parallel, merges the
results into canonical tracks, learns each listener's taste from their
interactions, and serves context-aware recommendations and a smart
playback queue over a JSON API.

# Application Architecture

	RootSupervisor ("cadence")
	├── StorageSupervisor ("storage-layer")
	│   ├── profile-flush (dirty taste profiles to BadgerDB)
	│   └── value-log-gc (BadgerDB value log GC)
	├── DiscoverySupervisor ("discovery-layer")
	│   └── search-cache-janitor (expired search results)
	└── APISupervisor ("api-layer")
	    └── api-server (chi router)

Component initialization order:

 1. Environment: optional .env file via godotenv
 2. Configuration: Koanf v2 defaults, config file, environment variables
 3. Logging: zerolog with JSON/console output modes
 4. Discovery: catalog sources, gatherer, resolver and search cache
 5. Storage: BadgerDB taste profile repository
 6. Sessions: per-listener taste store, ranker and queue
 7. HTTP Server: chi router with the middleware stack
 8. Supervisor Tree: suture v4 process supervision

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The API server drains
in-flight requests, the flush service persists dirty profiles one last
time, and the profile database is closed.

# Example Usage

	export SPOTIFY_ENABLED=true
	export SPOTIFY_CLIENT_ID=...
	export SPOTIFY_CLIENT_SECRET=...
	export YOUTUBE_ENABLED=true
	export YOUTUBE_API_KEY=...
	export STORAGE_PATH=/data/profiles
	./cadence
*/
package main
