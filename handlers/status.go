// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/middleware"
	"github.com/danielhkuo/gameday/models"
)

type StatusHandler struct {
	ledger    *ledger.Ledger
	cfg       cliparse.Config
	startedAt time.Time
	now       func() time.Time
}

func NewStatusHandler(l *ledger.Ledger, cfg cliparse.Config, startedAt time.Time) *StatusHandler {
	return &StatusHandler{ledger: l, cfg: cfg, startedAt: startedAt, now: time.Now}
}

// Health handles GET /health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Status handles GET /api/status
// Always 200; a failed database ping is reported as "degraded"
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	now := h.now()
	resp := models.StatusResponse{
		Status:     "ok",
		Database:   models.DatabaseStatus{Type: h.cfg.DatabaseType, Connected: true},
		VotingOpen: h.ledger.IsOpen(now),
		Uptime:     strings.TrimSpace(humanize.RelTime(h.startedAt, now, "", "")),
	}

	if err := h.ledger.Ping(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database.Connected = false
	} else if n, err := h.ledger.Count(ctx); err != nil {
		slog.Warn("failed to count votes", "error", err)
		resp.Status = "degraded"
	} else {
		resp.VoteCount = &n
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	teams := h.ledger.Event().Teams()
	middleware.JSONResponse(w, http.StatusOK, models.ServiceInfo{
		Message: "Super Bowl LX (2026) Voting API",
		Endpoints: map[string]string{
			"GET /api/votes":          "Current vote counts",
			"POST /api/votes":         `Submit a vote (body: {"team": "` + teams[0] + `" | "` + teams[1] + `"})`,
			"GET /api/votes/stats":    "Totals, recent votes and 24h analytics",
			"DELETE /api/votes/reset": "Delete all votes (X-Admin-Key required)",
			"GET /api/game":           "Countdown before kickoff, live game snapshot after",
			"GET /api/game/test":      "Upstream structure probe",
			"GET /api/status":         "Service and database status",
			"GET /health":             "Health check",
		},
	})
}
