// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the game day API server.

The server runs a fan vote for one game (closed at kickoff) and a live
game dashboard feed built from ESPN's public summary, play-by-play and
roster documents.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first if present:

	ADMIN_KEY_SALT=... DATABASE_URL=gameday.db go run .

Or with flags:

	go run . -p 4000 -t postgres -d "postgres://..." -admin-salt ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for the reset admin key HMAC
  - DATABASE_URL or MONGODB_URI (-d): Vote store location

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - IP_HASH_SALT (-ip-salt): Salt for voter IP hashes
  - CORS_ORIGINS or FRONTEND_URL (-cors): Allowed origins (default: *)
  - GAME_ID, KICKOFF_AT, HOME_TEAM, AWAY_TEAM: The event
  - UPSTREAM_TIMEOUT, GAME_CACHE_TTL, FETCH_ROSTERS: Game feed tuning

# Modes

Print the reset key for the configured salt and exit:

	go run . -print-admin-key

Poll a running server and print one line per update:

	go run . -watch http://localhost:4000

# Architecture

  - handlers: HTTP request handlers (votes, game, status)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key, JSON helpers
  - ledger: Vote rules, tallies and stats
  - store: SQLite, PostgreSQL and MongoDB vote stores
  - db: SQL schema creation
  - espn: Upstream HTTP client and document types
  - gamefeed: Snapshot normalization, caching and probe
  - dashclient: Polling dashboard client
  - models: Request/response types
  - auth: Admin keys and IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
