// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/gameday/auth"
	"github.com/danielhkuo/gameday/espn"
	"github.com/danielhkuo/gameday/gamefeed"
	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/models"
	"github.com/danielhkuo/gameday/testutil"
)

func setupRouter(t *testing.T) (*http.ServeMux, *testutil.Upstream) {
	t.Helper()
	st := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	u := testutil.NewUpstream(t)

	l := ledger.New(st, cfg.Event, cfg.IPHashSalt)
	client := espn.New(u.SummaryURL(), u.PlayByPlayURL(), u.RosterURL(), cfg.UpstreamTimeout)
	feed := gamefeed.New(client, cfg.Event, gamefeed.Options{Timeout: cfg.UpstreamTimeout})

	return NewRouter(l, feed, cfg), u
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Expected ok status, got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Only the exact root is the service description
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/status"},
		{"GET", "/api/votes"},
		{"POST", "/api/votes"},
		{"GET", "/api/votes/stats"},
		{"DELETE", "/api/votes/reset"},
		{"GET", "/api/game"},
		{"GET", "/api/game/test"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/api/votes"},
		{"GET", "/api/votes/reset"},
		{"POST", "/api/game"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestVoteFlow(t *testing.T) {
	mux, _ := setupRouter(t)
	cfg := testutil.GetTestConfig()

	for _, team := range []string{"patriots", "patriots", "seahawks", "patriots"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/votes", models.SubmitVoteRequest{Team: team}, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/votes", nil))
	var tally models.Tally
	testutil.AssertJSON(t, w, &tally)
	if tally.Percent("patriots") != 75 || tally.Percent("seahawks") != 25 {
		t.Errorf("unexpected tally %+v", tally)
	}

	// Reset requires the admin key
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/votes/reset", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	key := auth.GenerateAdminKey(auth.ScopeResetVotes, cfg.AdminKeySalt)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/api/votes/reset", nil, map[string]string{"X-Admin-Key": key}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var reset models.ResetVotesResponse
	testutil.AssertJSON(t, w, &reset)
	if reset.DeletedCount != 4 {
		t.Errorf("Expected 4 deleted, got %d", reset.DeletedCount)
	}
}

func TestGameBeforeKickoff(t *testing.T) {
	mux, u := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/game", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.GameSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Status != models.StatusPregame || snap.Countdown == nil {
		t.Errorf("Expected pregame countdown, got %+v", snap)
	}
	if u.TotalCalls() != 0 {
		t.Errorf("Expected no upstream calls, got %d", u.TotalCalls())
	}
}
