// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gameday/gamefeed"
	"github.com/danielhkuo/gameday/middleware"
)

type GameHandler struct {
	feed *gamefeed.Feed
}

func NewGameHandler(feed *gamefeed.Feed) *GameHandler {
	return &GameHandler{feed: feed}
}

// GetGame handles GET /api/game
// Before kickoff this is a countdown and never touches the upstream
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := h.feed.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to build game snapshot", "game_id", h.feed.Event().GameID, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Failed to fetch game data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}

// GetGameProbe handles GET /api/game/test
// Always fetches, regardless of kickoff and cache
func (h *GameHandler) GetGameProbe(w http.ResponseWriter, r *http.Request) {
	probe, err := h.feed.Probe(r.Context())
	if err != nil {
		slog.Error("game probe failed", "game_id", h.feed.Event().GameID, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Failed to fetch test game data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, probe)
}
