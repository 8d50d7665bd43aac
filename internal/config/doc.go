// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

/*
Package config provides centralized configuration management for Cadence.

Configuration is layered with Koanf v2. Later layers win:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/cadence/config.yaml
 3. Environment variables mapped through an explicit table

Binaries load a .env file (joho/godotenv) before calling Load, so local
development can keep credentials out of the shell profile.

# Sections

  - server: listen address, request timeout, shutdown timeout
  - logging: level, format, caller
  - security: CORS origins and per-IP rate limiting
  - catalog: fan-out deadline, search cache, and per-source clients
    (spotify, deezer, youtube)
  - taste: profile decay, artist multiplier, vector window
  - recommend: list size, recency exclusion, forgotten-treasure splice
  - queue: diversity interval and artist repetition window
  - storage: BadgerDB path for persisted taste profiles
  - supervisor: restart policy and profile flush interval

# Example

	# config.yaml
	catalog:
	  deadline: 5s
	  spotify:
	    enabled: true
	recommend:
	  treasure_positions: [2, 7]

	SPOTIFY_CLIENT_ID=... SPOTIFY_CLIENT_SECRET=... ./cadence
*/
package config
