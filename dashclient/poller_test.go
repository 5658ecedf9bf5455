// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/gameday/models"
)

type fakeServer struct {
	votesCalls atomic.Int32
	gameCalls  atomic.Int32
	votesFail  atomic.Bool
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()
	fs := &fakeServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/votes", func(w http.ResponseWriter, r *http.Request) {
		n := fs.votesCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if fs.votesFail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Failed to fetch votes"}`))
			return
		}
		if n == 1 {
			w.Write([]byte(`{"patriots":3,"seahawks":1,"total":4,"percentages":{"patriots":75,"seahawks":25}}`))
			return
		}
		w.Write([]byte(`{"patriots":3,"seahawks":2,"total":5,"percentages":{"patriots":60,"seahawks":40}}`))
	})
	mux.HandleFunc("GET /api/game", func(w http.ResponseWriter, r *http.Request) {
		fs.gameCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"gameStarted":false,"status":"PREGAME","countdown":{"days":0,"hours":1,"minutes":0,"seconds":0},"kickoffIn":"1 hour from now"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return fs, srv
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPoller_IndependentIntervals(t *testing.T) {
	fs, srv := newFakeServer(t)

	p := New(srv.URL)
	p.VotesEvery = 10 * time.Millisecond
	p.GameEvery = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, nil) }()

	waitFor(t, func() bool { return fs.votesCalls.Load() >= 4 })
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	// Game is fetched once up front and then waits for its own ticker.
	if got := fs.gameCalls.Load(); got != 1 {
		t.Errorf("expected 1 game call, got %d", got)
	}

	st := p.State()
	if st.Game == nil || st.Game.Status != models.StatusPregame {
		t.Errorf("expected pregame snapshot, got %+v", st.Game)
	}
}

func TestPoller_LatestResponseWins(t *testing.T) {
	_, srv := newFakeServer(t)

	p := New(srv.URL)
	p.VotesEvery = 10 * time.Millisecond
	p.GameEvery = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, nil)

	waitFor(t, func() bool {
		st := p.State()
		return st.Votes != nil && st.Votes.Total == 5
	})

	st := p.State()
	if st.Votes.Count("seahawks") != 2 || st.Votes.Percent("patriots") != 60 {
		t.Errorf("unexpected tally %+v", st.Votes)
	}
}

func TestPoller_ErrorKeepsLastGoodValue(t *testing.T) {
	fs, srv := newFakeServer(t)

	p := New(srv.URL)
	p.VotesEvery = 10 * time.Millisecond
	p.GameEvery = time.Hour

	var mu sync.Mutex
	var updates []State
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, func(s State) {
		mu.Lock()
		updates = append(updates, s)
		mu.Unlock()
	})

	waitFor(t, func() bool { return p.State().Votes != nil })
	fs.votesFail.Store(true)
	waitFor(t, func() bool { return p.State().VotesErr != nil })

	st := p.State()
	if st.Votes == nil {
		t.Fatal("expected last good tally to be kept")
	}
	var apiErr *APIError
	if !errors.As(st.VotesErr, &apiErr) {
		t.Fatalf("expected APIError, got %T", st.VotesErr)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Message != "Failed to fetch votes" {
		t.Errorf("unexpected error %+v", apiErr)
	}

	// Retried on the next tick, and recovers.
	fs.votesFail.Store(false)
	waitFor(t, func() bool { return p.State().VotesErr == nil })

	mu.Lock()
	defer mu.Unlock()
	if len(updates) < 3 {
		t.Errorf("expected onUpdate per response, got %d", len(updates))
	}
}

func TestPoller_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := New(url)
	p.VotesEvery = time.Hour
	p.GameEvery = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx, nil)

	waitFor(t, func() bool {
		st := p.State()
		return st.VotesErr != nil && st.GameErr != nil
	})
	if st := p.State(); st.Votes != nil || st.Game != nil {
		t.Error("expected no data from an unreachable server")
	}
}

func TestState_Line(t *testing.T) {
	q := 3
	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{
			name:  "empty",
			state: State{},
			want:  []string{"game: waiting", "votes: waiting"},
		},
		{
			name: "pregame",
			state: State{
				Game: &models.GameSnapshot{Status: models.StatusPregame, KickoffIn: "2 hours from now"},
				Votes: &models.Tally{
					Teams:       [2]string{"patriots", "seahawks"},
					Counts:      map[string]int{"patriots": 1500, "seahawks": 500},
					Total:       2000,
					Percentages: map[string]int{"patriots": 75, "seahawks": 25},
				},
			},
			want: []string{"kickoff 2 hours from now", "patriots 1,500 (75%)", "seahawks 500 (25%)", "2,000 total"},
		},
		{
			name: "live",
			state: State{Game: &models.GameSnapshot{
				GameStarted:   true,
				Status:        models.StatusLive,
				Quarter:       &q,
				TimeRemaining: "7:42",
				Teams: map[string]models.TeamView{
					"patriots": {Abbreviation: "NE", Score: 17},
					"seahawks": {Abbreviation: "SEA", Score: 10, Possession: true},
				},
			}},
			want: []string{"Q3 7:42 NE 17 - SEA* 10"},
		},
		{
			name:  "errors",
			state: State{GameErr: &APIError{Path: GamePath, StatusCode: 503, Message: "Failed to fetch game data"}},
			want:  []string{"game: GET /api/game -> 503: Failed to fetch game data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.state.Line()
			for _, w := range tt.want {
				if !strings.Contains(line, w) {
					t.Errorf("line %q missing %q", line, w)
				}
			}
		})
	}
}
