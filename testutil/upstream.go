// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Upstream paths served by the fake ESPN server
const (
	PathSummary    = "/summary"
	PathPlayByPlay = "/playbyplay"
)

// RosterPath returns the fake roster path for a team abbreviation.
func RosterPath(abbr string) string {
	return "/teams/" + strings.ToLower(abbr) + "/roster"
}

// Upstream is a fake ESPN server backed by the testdata fixtures. It counts
// calls per path and can be told to fail or stall.
type Upstream struct {
	Server *httptest.Server

	mu     sync.Mutex
	calls  map[string]int
	status map[string]int
	docs   map[string][]byte
	delay  time.Duration
}

// NewUpstream starts a fake ESPN server. It is closed when the test ends.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		calls:  make(map[string]int),
		status: make(map[string]int),
		docs: map[string][]byte{
			PathSummary:       Fixture(t, "summary.json"),
			PathPlayByPlay:    Fixture(t, "playbyplay.json"),
			RosterPath("NE"):  Fixture(t, "roster_ne.json"),
			RosterPath("SEA"): Fixture(t, "roster_sea.json"),
		},
	}

	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.calls[r.URL.Path]++
	code := u.status[r.URL.Path]
	doc, ok := u.docs[r.URL.Path]
	delay := u.delay
	u.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if code != 0 {
		w.WriteHeader(code)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(doc)
}

func (u *Upstream) SummaryURL() string    { return u.Server.URL + PathSummary }
func (u *Upstream) PlayByPlayURL() string { return u.Server.URL + PathPlayByPlay }
func (u *Upstream) RosterURL() string     { return u.Server.URL + "/teams/%s/roster" }

// Calls returns how many requests hit path.
func (u *Upstream) Calls(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

// TotalCalls returns the number of requests across all paths.
func (u *Upstream) TotalCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.calls {
		n += c
	}
	return n
}

// SetStatus makes path answer with code and no body. 0 restores the fixture.
func (u *Upstream) SetStatus(path string, code int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status[path] = code
}

// SetDocument replaces the body served for path.
func (u *Upstream) SetDocument(path string, doc []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.docs[path] = doc
}

// SetDelay stalls every response by d.
func (u *Upstream) SetDelay(d time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = d
}
