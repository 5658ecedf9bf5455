// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Event

Event is the injected description of the one game the service serves:

	ev := models.Event{
		GameID:  "401772988",
		Kickoff: kickoff,
		Home:    models.TeamRef{Key: "patriots", Abbr: "NE"},
		Away:    models.TeamRef{Key: "seahawks", Abbr: "SEA"},
	}

Team keys are what clients send in votes and what the JSON responses are
keyed by. Abbreviations locate the teams in upstream documents.

# Vote Types

  - SubmitVoteRequest: team
  - SubmitVoteResponse: success, message, votes
  - ResetVotesResponse: success, message, deletedCount
  - Vote: id, team, votedAt (ip hash never serialized)
  - Tally: per-team counts, total, percentages
  - VoteStats: totals, recent, analytics

# Game Types

GameSnapshot is the dashboard view model. It nests TeamView, PlayerView,
Play, ScoringPlay, Drives, LeaderCategory, Venue and Weather. Status is one
of the Status* constants.

# Error Response

All errors use:

	{"error": "Human readable message"}
*/
package models
