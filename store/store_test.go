// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/models"
)

// testStore runs the same behaviour checks against any ledger.Store.
func testStore(t *testing.T, st ledger.Store) {
	ctx := context.Background()
	base := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

	if _, err := st.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}

	hash := "abc123"
	votes := []models.Vote{
		{ID: "v1", Team: "patriots", VotedAt: base.Add(-48 * time.Hour), IPHash: &hash},
		{ID: "v2", Team: "patriots", VotedAt: base.Add(-2 * time.Hour)},
		{ID: "v3", Team: "seahawks", VotedAt: base.Add(-time.Hour)},
		{ID: "v4", Team: "patriots", VotedAt: base.Add(-250 * time.Millisecond)},
	}
	for _, v := range votes {
		if err := st.InsertVote(ctx, v); err != nil {
			t.Fatalf("InsertVote(%s): %v", v.ID, err)
		}
	}

	t.Run("CountByTeam", func(t *testing.T) {
		counts, err := st.CountByTeam(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if counts["patriots"] != 3 || counts["seahawks"] != 1 {
			t.Errorf("unexpected counts %v", counts)
		}
	})

	t.Run("RecentVotes", func(t *testing.T) {
		recent, err := st.RecentVotes(ctx, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(recent) != 2 {
			t.Fatalf("expected 2 votes, got %d", len(recent))
		}
		if recent[0].ID != "v4" || recent[1].ID != "v3" {
			t.Errorf("expected newest first, got %s, %s", recent[0].ID, recent[1].ID)
		}
		if !recent[0].VotedAt.Equal(votes[3].VotedAt) {
			t.Errorf("voted_at round trip: got %v want %v", recent[0].VotedAt, votes[3].VotedAt)
		}
	})

	t.Run("CountSince", func(t *testing.T) {
		n, err := st.CountSince(ctx, base.Add(-24*time.Hour))
		if err != nil {
			t.Fatal(err)
		}
		if n != 3 {
			t.Errorf("expected 3 votes in window, got %d", n)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		if err := st.Ping(ctx); err != nil {
			t.Errorf("Ping: %v", err)
		}
	})

	t.Run("DeleteAll", func(t *testing.T) {
		n, err := st.DeleteAll(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if n != 4 {
			t.Errorf("expected 4 deleted, got %d", n)
		}
		counts, _ := st.CountByTeam(ctx)
		if len(counts) != 0 {
			t.Errorf("expected no votes after delete, got %v", counts)
		}
	})
}

func TestSQLStore_SQLite(t *testing.T) {
	st, err := OpenSQL(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	testStore(t, st)
}

func TestSQLStore_Postgres(t *testing.T) {
	url := os.Getenv("TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("TEST_POSTGRES_URL not set")
	}
	st, err := OpenSQL(context.Background(), "postgres", url)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	testStore(t, st)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}
	st, err := OpenMongo(context.Background(), uri)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	testStore(t, st)
}

func TestOpen(t *testing.T) {
	st, err := Open(context.Background(), cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if _, ok := st.(*SQLStore); !ok {
		t.Errorf("expected *SQLStore, got %T", st)
	}

	if _, err := Open(context.Background(), cliparse.Config{DatabaseType: "oracle"}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestOpenMongo_InvalidURI(t *testing.T) {
	if _, err := OpenMongo(context.Background(), "not-a-uri"); err == nil {
		t.Error("expected error for invalid uri")
	}
}

func TestLedgerOverSQLite(t *testing.T) {
	st, err := OpenSQL(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	ev := models.Event{
		GameID:  "1",
		Kickoff: time.Now().Add(time.Hour),
		Home:    models.TeamRef{Key: "patriots", Abbr: "NE"},
		Away:    models.TeamRef{Key: "seahawks", Abbr: "SEA"},
	}
	l := ledger.New(st, ev, "")
	ctx := context.Background()

	for _, team := range []string{"patriots", "patriots", "patriots", "seahawks"} {
		if _, err := l.Submit(ctx, team, "127.0.0.1"); err != nil {
			t.Fatal(err)
		}
	}
	tally, err := l.Tally(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if tally.Percent("patriots") != 75 || tally.Percent("seahawks") != 25 || tally.Total != 4 {
		t.Errorf("unexpected tally %+v", tally)
	}

	stats, err := l.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.Recent) != 4 || stats.Analytics.VotesLast24Hours != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
