/*
Package gamefeed builds the dashboard view of one game from ESPN documents.

# Snapshots

Before kickoff Snapshot returns a countdown and makes no upstream calls:

	{"gameStarted":false,"status":"PREGAME","countdown":{"days":0,"hours":2,...}}

After kickoff it fetches the summary and play-by-play documents (required)
and both team rosters (optional) in parallel, then normalizes them. Any
required failure returns ErrUpstreamUnavailable and no partial snapshot. A
failed roster only leaves identity fields blank.

# Normalization

Each part of the snapshot comes from one extraction function: teams,
status, situation, plays, scoring plays, drives, leaders, venue, weather.
Players are merged by athlete id from leaders, injuries and the boxscore.
A boxscore category always wins over a leader or injury placeholder for the
same category key.

# Caching

Live snapshots are cached per game id for Options.CacheTTL and concurrent
misses share one fetch. Errors and pregame snapshots are never cached.
*/
package gamefeed
