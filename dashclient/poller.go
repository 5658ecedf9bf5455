// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/gameday/models"
)

const (
	DefaultVotesEvery = 5 * time.Second
	DefaultGameEvery  = 10 * time.Second

	VotesPath = "/api/votes"
	GamePath  = "/api/game"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s -> %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("GET %s -> %d: %s", e.Path, e.StatusCode, e.Message)
}

// State is what the dashboard currently shows. Each half is replaced by the
// most recent response for it; an error keeps the last good value.
type State struct {
	Votes    *models.Tally
	VotesErr error
	VotesAt  time.Time
	Game     *models.GameSnapshot
	GameErr  error
	GameAt   time.Time
}

// Poller fetches /api/votes and /api/game on independent intervals.
type Poller struct {
	BaseURL    string
	HTTP       *http.Client
	VotesEvery time.Duration
	GameEvery  time.Duration

	mu    sync.Mutex
	state State
}

func New(baseURL string) *Poller {
	return &Poller{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		VotesEvery: DefaultVotesEvery,
		GameEvery:  DefaultGameEvery,
	}
}

// State returns a copy of the current state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run polls both endpoints immediately and then on their tickers until ctx is
// done. Requests are never coordinated with each other: a slow response may
// land after a newer one and still win. onUpdate, when set, sees the state
// after every response.
func (p *Poller) Run(ctx context.Context, onUpdate func(State)) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	votesEvery := orDefault(p.VotesEvery, DefaultVotesEvery)
	gameEvery := orDefault(p.GameEvery, DefaultGameEvery)

	spawn := func(fn func(context.Context) State) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st := fn(ctx)
			if onUpdate != nil && ctx.Err() == nil {
				onUpdate(st)
			}
		}()
	}

	spawn(p.pollVotes)
	spawn(p.pollGame)

	votesTick := time.NewTicker(votesEvery)
	defer votesTick.Stop()
	gameTick := time.NewTicker(gameEvery)
	defer gameTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-votesTick.C:
			spawn(p.pollVotes)
		case <-gameTick.C:
			spawn(p.pollGame)
		}
	}
}

func (p *Poller) pollVotes(ctx context.Context) State {
	var tally models.Tally
	err := p.get(ctx, VotesPath, &tally)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.VotesAt = time.Now()
	p.state.VotesErr = err
	if err == nil {
		p.state.Votes = &tally
	} else {
		slog.Warn("votes poll failed", "error", err)
	}
	return p.state
}

func (p *Poller) pollGame(ctx context.Context) State {
	var snap models.GameSnapshot
	err := p.get(ctx, GamePath, &snap)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.GameAt = time.Now()
	p.state.GameErr = err
	if err == nil {
		p.state.Game = &snap
	} else {
		slog.Warn("game poll failed", "error", err)
	}
	return p.state
}

func (p *Poller) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	client := p.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body models.ErrorResponse
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(b, &body)
		return &APIError{Path: path, StatusCode: resp.StatusCode, Message: body.Error}
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
