package gamefeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/gameday/espn"
	"github.com/danielhkuo/gameday/models"
)

// ErrUpstreamUnavailable covers upstream timeouts, non-2xx answers and
// documents that can't be mapped.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Upstream is the source of the raw game documents. *espn.Client
// satisfies it.
type Upstream interface {
	Summary(ctx context.Context, gameID string) (*espn.Summary, error)
	PlayByPlay(ctx context.Context, gameID string) (*espn.PlayByPlay, error)
	Roster(ctx context.Context, abbr string) (*espn.Roster, error)
}

var _ Upstream = (*espn.Client)(nil)

type Options struct {
	// Timeout bounds one fetch cycle. Zero means 10s.
	Timeout time.Duration
	// CacheTTL is how long a live snapshot is reused. Zero disables caching.
	CacheTTL time.Duration
	// FetchRosters adds the optional roster requests.
	FetchRosters bool
}

// Feed produces game snapshots for one event.
type Feed struct {
	up    Upstream
	event models.Event
	opts  Options
	now   func() time.Time
	cache *snapshotCache
	group singleflight.Group
}

func New(up Upstream, event models.Event, opts Options) *Feed {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Feed{
		up:    up,
		event: event,
		opts:  opts,
		now:   time.Now,
		cache: newSnapshotCache(opts.CacheTTL),
	}
}

// SetClock replaces the time source.
func (f *Feed) SetClock(now func() time.Time) {
	f.now = now
}

func (f *Feed) Event() models.Event {
	return f.event
}

// Snapshot returns the pregame countdown before kickoff, and a normalized
// live snapshot after it. Live snapshots are shared between callers and must
// not be modified.
func (f *Feed) Snapshot(ctx context.Context) (models.GameSnapshot, error) {
	now := f.now()
	if !f.event.Started(now) {
		return Pregame(f.event, now), nil
	}

	key := f.event.GameID
	if snap, ok := f.cache.get(key, now); ok {
		return snap, nil
	}

	v, err, _ := f.group.Do(key, func() (any, error) {
		if snap, ok := f.cache.get(key, f.now()); ok {
			return snap, nil
		}
		snap, err := f.fetch(ctx)
		if err != nil {
			return nil, err
		}
		f.cache.put(key, snap, f.now())
		return snap, nil
	})
	if err != nil {
		return models.GameSnapshot{}, err
	}
	return v.(models.GameSnapshot), nil
}

// fetch loads and normalizes the documents. The fetch is detached from the
// caller's cancellation and bounded only by the upstream timeout, since its
// result may be shared with other callers.
func (f *Feed) fetch(ctx context.Context) (models.GameSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.opts.Timeout)
	defer cancel()

	start := time.Now()
	sum, pbp, rosters, err := f.load(ctx)
	if err != nil {
		logUpstreamError(f.event.GameID, err)
		return models.GameSnapshot{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	snap, err := Normalize(f.event, sum, pbp, rosters)
	if err != nil {
		slog.Error("failed to normalize game documents", "game_id", f.event.GameID, "error", err)
		return models.GameSnapshot{}, err
	}

	slog.Debug("game snapshot built",
		"game_id", f.event.GameID,
		"status", snap.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap, nil
}

// load fans out the required summary and play-by-play requests and the
// optional roster requests, then joins them. A roster failure leaves that
// team's roster nil.
func (f *Feed) load(ctx context.Context) (*espn.Summary, *espn.PlayByPlay, map[string]*espn.Roster, error) {
	var (
		sum *espn.Summary
		pbp *espn.PlayByPlay
	)
	teams := []models.TeamRef{f.event.Home, f.event.Away}
	rosters := make([]*espn.Roster, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := f.up.Summary(gctx, f.event.GameID)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		sum = s
		return nil
	})
	g.Go(func() error {
		p, err := f.up.PlayByPlay(gctx, f.event.GameID)
		if err != nil {
			return fmt.Errorf("play-by-play: %w", err)
		}
		pbp = p
		return nil
	})
	if f.opts.FetchRosters {
		for i, team := range teams {
			g.Go(func() error {
				r, err := f.up.Roster(gctx, team.Abbr)
				if err != nil {
					slog.Warn("roster fetch failed, continuing without it", "team", team.Key, "error", err)
					return nil
				}
				rosters[i] = r
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	byKey := make(map[string]*espn.Roster, len(teams))
	for i, team := range teams {
		if rosters[i] != nil {
			byKey[team.Key] = rosters[i]
		}
	}
	return sum, pbp, byKey, nil
}

func logUpstreamError(gameID string, err error) {
	var se *espn.StatusError
	if errors.As(err, &se) {
		slog.Error("upstream returned error status", "game_id", gameID, "url", se.URL, "status", se.StatusCode)
		return
	}
	slog.Error("upstream fetch failed", "game_id", gameID, "error", err)
}
