// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                 Server port (default: 4000)
	-d                 Database URL
	-t                 Database type: sqlite, postgres or mongo (default: sqlite)
	-admin-salt        Admin key salt
	-ip-salt           IP hash salt
	-cors              Comma separated allowed origins
	-kickoff           Kickoff instant (RFC 3339)
	-game              Upstream game id
	-home, -away       Teams as key:ABBR, e.g. patriots:NE
	-upstream-timeout  Per-request upstream timeout (default: 10s)
	-cache-ttl         Live snapshot cache TTL, 0 disables (default: 5s)
	-rosters           Fetch team rosters (default: true)
	-print-admin-key   Print the vote reset key and exit
	-watch URL         Poll a running server and print updates

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d (MONGODB_URI is also accepted)
	DATABASE_TYPE     → -t
	ADMIN_KEY_SALT    → -admin-salt
	IP_HASH_SALT      → -ip-salt
	CORS_ORIGINS      → -cors (FRONTEND_URL is also accepted)
	KICKOFF_AT        → -kickoff
	GAME_ID           → -game
	HOME_TEAM         → -home
	AWAY_TEAM         → -away
	UPSTREAM_TIMEOUT  → -upstream-timeout
	GAME_CACHE_TTL    → -cache-ttl
	FETCH_ROSTERS     → -rosters

ESPN_SUMMARY_URL, ESPN_PBP_URL and ESPN_ROSTER_URL override the upstream
endpoints. CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - no database URL is given (skipped for -print-admin-key and -watch)
  - the database type, kickoff, teams or durations don't parse
*/
package cliparse
