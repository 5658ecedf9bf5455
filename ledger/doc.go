// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote ledger for one event.

# Voting Window

Votes are accepted while now is before kickoff. The check is a plain time
comparison on every call, so the ledger moves from open to closed exactly
once and never back.

	l := ledger.New(store, cfg.Event, cfg.IPHashSalt)
	tally, err := l.Submit(ctx, "patriots", clientIP)

# Tallies

Tallies are never stored. Every read aggregates all votes grouped by team:

	pct = round(100 * count / total)   // 0 when total is 0

# Errors

  - ErrInvalidTeam: team is not one of the event's two keys
  - ErrWindowClosed: kickoff has passed
  - ErrStorage: wraps the underlying store error
*/
package ledger
