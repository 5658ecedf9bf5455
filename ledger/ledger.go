// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/gameday/auth"
	"github.com/danielhkuo/gameday/models"
)

// RecentLimit is how many votes Stats reports.
const RecentLimit = 10

var (
	ErrInvalidTeam  = errors.New("invalid team")
	ErrWindowClosed = errors.New("voting is closed")
	ErrStorage      = errors.New("vote storage failure")
)

// Store persists votes. Votes are append-only; the only delete is DeleteAll.
type Store interface {
	InsertVote(ctx context.Context, v models.Vote) error
	CountByTeam(ctx context.Context) (map[string]int, error)
	RecentVotes(ctx context.Context, limit int) ([]models.Vote, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Ledger accepts votes for the two teams of one event until kickoff.
type Ledger struct {
	store  Store
	event  models.Event
	ipSalt string
	now    func() time.Time
}

func New(store Store, event models.Event, ipSalt string) *Ledger {
	return &Ledger{store: store, event: event, ipSalt: ipSalt, now: time.Now}
}

// SetClock replaces the time source.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

func (l *Ledger) Event() models.Event {
	return l.event
}

// IsOpen reports whether votes are accepted at t.
func (l *Ledger) IsOpen(t time.Time) bool {
	return !l.event.Started(t)
}

// Tally aggregates every stored vote.
func (l *Ledger) Tally(ctx context.Context) (models.Tally, error) {
	counts, err := l.store.CountByTeam(ctx)
	if err != nil {
		return models.Tally{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return NewTally(l.event.Teams(), counts), nil
}

// Submit records one vote and returns the refreshed tally.
func (l *Ledger) Submit(ctx context.Context, team, clientIP string) (models.Tally, error) {
	if !l.event.HasTeam(team) {
		return models.Tally{}, ErrInvalidTeam
	}

	now := l.now()
	if !l.IsOpen(now) {
		return models.Tally{}, ErrWindowClosed
	}

	hash := auth.HashIP(clientIP, l.ipSalt)
	vote := models.Vote{
		ID:      uuid.NewString(),
		Team:    team,
		VotedAt: now.UTC().Truncate(time.Millisecond),
		IPHash:  &hash,
	}
	if err := l.store.InsertVote(ctx, vote); err != nil {
		return models.Tally{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return l.Tally(ctx)
}

// Stats returns totals, the latest votes and a rolling 24h count.
func (l *Ledger) Stats(ctx context.Context) (models.VoteStats, error) {
	totals, err := l.Tally(ctx)
	if err != nil {
		return models.VoteStats{}, err
	}

	votes, err := l.store.RecentVotes(ctx, RecentLimit)
	if err != nil {
		return models.VoteStats{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	recent := make([]models.RecentVote, 0, len(votes))
	for _, v := range votes {
		recent = append(recent, models.RecentVote{Team: v.Team, VotedAt: v.VotedAt})
	}

	last24h, err := l.store.CountSince(ctx, l.now().UTC().Add(-24*time.Hour))
	if err != nil {
		return models.VoteStats{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	avg := 0
	if totals.Total > 0 {
		avg = int(math.Round(float64(last24h) / 24))
	}

	return models.VoteStats{
		Totals: totals,
		Recent: recent,
		Analytics: models.VoteAnalytics{
			VotesLast24Hours:    last24h,
			AverageVotesPerHour: avg,
		},
	}, nil
}

// Reset deletes every vote and returns how many were removed.
func (l *Ledger) Reset(ctx context.Context) (int64, error) {
	n, err := l.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return n, nil
}

// Count returns the number of votes for the two teams.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	t, err := l.Tally(ctx)
	if err != nil {
		return 0, err
	}
	return t.Total, nil
}

func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// NewTally builds a tally for teams from raw per-team counts. Counts for any
// other key are ignored.
func NewTally(teams [2]string, counts map[string]int) models.Tally {
	t := models.Tally{
		Teams:       teams,
		Counts:      make(map[string]int, 2),
		Percentages: make(map[string]int, 2),
	}
	for _, team := range teams {
		t.Counts[team] = counts[team]
		t.Total += counts[team]
	}
	for _, team := range teams {
		if t.Total > 0 {
			t.Percentages[team] = int(math.Round(100 * float64(t.Counts[team]) / float64(t.Total)))
		} else {
			t.Percentages[team] = 0
		}
	}
	return t
}
