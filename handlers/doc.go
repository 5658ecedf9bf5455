// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the game day API.

# Handler Types

Each handler is a struct holding the service it fronts:

  - VoteHandler: tally, vote submission, stats and reset (ledger.Ledger)
  - GameHandler: game snapshot and upstream probe (gamefeed.Feed)
  - StatusHandler: health, status and service description

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(ledger)

# Voting

	GET    /api/votes       → GetVotes
	POST   /api/votes       → SubmitVote (201, or 400 / 403 after kickoff)
	GET    /api/votes/stats → GetStats
	DELETE /api/votes/reset → ResetVotes

Reset is wrapped in middleware.RequireAdminKey by the router. Storage
failures are 500.

# Game

	GET /api/game      → GetGame
	GET /api/game/test → GetGameProbe

Upstream failures are 503. A pregame request never reaches the upstream.

# Errors

Every error body is {"error": "message"}.
*/
package handlers
