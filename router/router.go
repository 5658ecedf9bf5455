// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/gameday/auth"
	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/gamefeed"
	"github.com/danielhkuo/gameday/handlers"
	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/middleware"
)

func NewRouter(l *ledger.Ledger, feed *gamefeed.Feed, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(l)
	gameHandler := handlers.NewGameHandler(feed)
	statusHandler := handlers.NewStatusHandler(l, cfg, time.Now())

	// Health check
	mux.HandleFunc("GET /health", statusHandler.Health)
	mux.HandleFunc("GET /api/status", middleware.WithLogging(statusHandler.Status))

	// Votes (public until kickoff)
	mux.HandleFunc("GET /api/votes", middleware.WithLogging(voteHandler.GetVotes))
	mux.HandleFunc("POST /api/votes", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /api/votes/stats", middleware.WithLogging(voteHandler.GetStats))

	// Admin (requires X-Admin-Key)
	mux.HandleFunc("DELETE /api/votes/reset", middleware.WithLogging(
		middleware.RequireAdminKey(auth.ScopeResetVotes, cfg.AdminKeySalt, voteHandler.ResetVotes)))

	// Game feed
	mux.HandleFunc("GET /api/game", middleware.WithLogging(gameHandler.GetGame))
	mux.HandleFunc("GET /api/game/test", middleware.WithLogging(gameHandler.GetGameProbe))

	// Root endpoint
	mux.HandleFunc("GET /{$}", statusHandler.Root)

	return mux
}
