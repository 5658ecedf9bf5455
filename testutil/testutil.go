// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/models"
	"github.com/danielhkuo/gameday/store"
)

//go:embed testdata/*.json
var fixtures embed.FS

// Fixture returns the contents of testdata/<name>.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	b, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return b
}

// DecodeFixture unmarshals testdata/<name> into v.
func DecodeFixture(t testing.TB, name string, v any) {
	t.Helper()
	if err := json.Unmarshal(Fixture(t, name), v); err != nil {
		t.Fatalf("Failed to decode fixture %s: %v", name, err)
	}
}

// SetupTestDB opens a fresh in-memory SQLite vote store with the full schema
func SetupTestDB(t *testing.T) *store.SQLStore {
	t.Helper()

	st, err := store.OpenSQL(context.Background(), cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// TestEvent returns the default matchup with the given kickoff.
func TestEvent(kickoff time.Time) models.Event {
	return models.Event{
		GameID:  cliparse.DefaultGameID,
		Kickoff: kickoff,
		Home:    models.TeamRef{Key: "patriots", Abbr: "NE"},
		Away:    models.TeamRef{Key: "seahawks", Abbr: "SEA"},
	}
}

// GetTestConfig returns a standard test configuration. Kickoff is an hour
// away so voting is open.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            cliparse.DefaultPort,
		DatabaseURL:     ":memory:",
		DatabaseType:    cliparse.DatabaseSQLite,
		AdminKeySalt:    "test-admin-salt",
		CORSOrigins:     []string{"*"},
		Event:           TestEvent(time.Now().Add(time.Hour)),
		UpstreamTimeout: 2 * time.Second,
		CacheTTL:        0,
		FetchRosters:    true,
	}
}

// CreateTestVotes inserts n votes for team directly into the store
func CreateTestVotes(t *testing.T, st *store.SQLStore, team string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		v := models.Vote{
			ID:      uuid.NewString(),
			Team:    team,
			VotedAt: time.Now().UTC().Add(-time.Duration(i) * time.Second),
		}
		if err := st.InsertVote(context.Background(), v); err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
