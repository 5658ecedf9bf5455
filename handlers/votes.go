// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/middleware"
	"github.com/danielhkuo/gameday/models"
)

type VoteHandler struct {
	ledger *ledger.Ledger
}

func NewVoteHandler(l *ledger.Ledger) *VoteHandler {
	return &VoteHandler{ledger: l}
}

// GetVotes handles GET /api/votes
func (h *VoteHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	tally, err := h.ledger.Tally(r.Context())
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// SubmitVote handles POST /api/votes
// Accepted only before kickoff; returns the refreshed tally
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	tally, err := h.ledger.Submit(r.Context(), req.Team, middleware.GetClientIP(r))
	switch {
	case errors.Is(err, ledger.ErrInvalidTeam):
		teams := h.ledger.Event().Teams()
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid team. Must be %q or %q", teams[0], teams[1]))
		return
	case errors.Is(err, ledger.ErrWindowClosed):
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is closed. The game has started!")
		return
	case err != nil:
		slog.Error("failed to record vote", "team", req.Team, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "team", req.Team, "total", tally.Total)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Success: true,
		Message: "Vote recorded successfully!",
		Votes:   tally,
	})
}

// GetStats handles GET /api/votes/stats
func (h *VoteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute vote stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch vote statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// ResetVotes handles DELETE /api/votes/reset
// Requires X-Admin-Key (checked by middleware.RequireAdminKey)
func (h *VoteHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.ledger.Reset(r.Context())
	if err != nil {
		slog.Error("failed to reset votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset votes")
		return
	}

	slog.Warn("votes reset", "deleted", deleted, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.ResetVotesResponse{
		Success:      true,
		Message:      "All votes have been reset",
		DeletedCount: deleted,
	})
}
