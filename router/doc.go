// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the game day API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ledger, feed, cfg)

# Endpoints

Health and status:

	GET /health     - Liveness
	GET /api/status - Database, vote count, voting window, uptime
	GET /           - Service description

Votes (public):

	GET  /api/votes       - Current tally
	POST /api/votes       - Cast a vote (closed at kickoff)
	GET  /api/votes/stats - Totals, recent votes, 24h analytics

Admin (requires X-Admin-Key for scope votes:reset):

	DELETE /api/votes/reset - Delete all votes

Game:

	GET /api/game      - Countdown before kickoff, live snapshot after
	GET /api/game/test - Upstream structure probe

# Handler Initialization

The router creates handler instances with dependency injection:

	voteHandler := handlers.NewVoteHandler(ledger)
	gameHandler := handlers.NewGameHandler(feed)
	statusHandler := handlers.NewStatusHandler(ledger, cfg, time.Now())

CORS is applied around the whole mux in main.
*/
package router
