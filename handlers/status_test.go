// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/models"
	"github.com/danielhkuo/gameday/testutil"
)

func TestHealth(t *testing.T) {
	st := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewStatusHandler(ledger.New(st, cfg.Event, ""), cfg, time.Now())

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "ok" || resp.Timestamp.IsZero() {
		t.Errorf("unexpected health %+v", resp)
	}
}

func TestStatus(t *testing.T) {
	st := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	testutil.CreateTestVotes(t, st, "patriots", 2)

	started := time.Now().Add(-3 * time.Hour)
	h := NewStatusHandler(ledger.New(st, cfg.Event, ""), cfg, started)

	w := httptest.NewRecorder()
	h.Status(w, httptest.NewRequest("GET", "/api/status", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Status != "ok" || !resp.Database.Connected || resp.Database.Type != "sqlite" {
		t.Errorf("unexpected status %+v", resp)
	}
	if resp.VoteCount == nil || *resp.VoteCount != 2 {
		t.Errorf("Expected voteCount 2, got %v", resp.VoteCount)
	}
	if !resp.VotingOpen {
		t.Error("Expected voting open before kickoff")
	}
	if resp.Uptime != "3 hours" {
		t.Errorf("Expected uptime '3 hours', got %q", resp.Uptime)
	}
}

func TestStatus_Degraded(t *testing.T) {
	st := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.Event.Kickoff = time.Now().Add(-time.Minute)
	h := NewStatusHandler(ledger.New(st, cfg.Event, ""), cfg, time.Now())
	st.Close()

	w := httptest.NewRecorder()
	h.Status(w, httptest.NewRequest("GET", "/api/status", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "degraded" || resp.Database.Connected || resp.VoteCount != nil {
		t.Errorf("unexpected status %+v", resp)
	}
	if resp.VotingOpen {
		t.Error("Expected voting closed after kickoff")
	}
}

func TestRoot(t *testing.T) {
	st := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewStatusHandler(ledger.New(st, cfg.Event, ""), cfg, time.Now())

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ServiceInfo
	testutil.AssertJSON(t, w, &resp)
	if resp.Message == "" {
		t.Error("Expected a service message")
	}
	if _, ok := resp.Endpoints["POST /api/votes"]; !ok {
		t.Errorf("Expected vote endpoint listed, got %v", resp.Endpoints)
	}
}
