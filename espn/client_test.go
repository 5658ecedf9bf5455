package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/gameday/testutil"
)

func newTestClient(u *testutil.Upstream) *Client {
	return New(u.SummaryURL(), u.PlayByPlayURL(), u.RosterURL(), 2*time.Second)
}

func TestClient_Summary(t *testing.T) {
	u := testutil.NewUpstream(t)
	c := newTestClient(u)

	sum, err := c.Summary(context.Background(), "401772988")
	if err != nil {
		t.Fatal(err)
	}

	if len(sum.Header.Competitions) != 1 {
		t.Fatalf("expected 1 competition, got %d", len(sum.Header.Competitions))
	}
	comp := sum.Header.Competitions[0]
	if comp.Status.Type.State != "in" {
		t.Errorf("expected state in, got %s", comp.Status.Type.State)
	}
	if len(comp.Competitors) != 2 {
		t.Fatalf("expected 2 competitors, got %d", len(comp.Competitors))
	}

	// score arrives as a string for one team and a number for the other
	if comp.Competitors[0].Score.IntOr(-1) != 17 || comp.Competitors[1].Score.IntOr(-1) != 10 {
		t.Errorf("unexpected scores %q %q", comp.Competitors[0].Score, comp.Competitors[1].Score)
	}
	if sum.Situation == nil || sum.Situation.YardLine == nil {
		t.Fatal("expected situation with yard line")
	}
	if len(sum.Leaders) != 2 || len(sum.Boxscore.Players) != 2 || len(sum.Injuries) != 1 {
		t.Errorf("unexpected collections: leaders=%d boxscore=%d injuries=%d",
			len(sum.Leaders), len(sum.Boxscore.Players), len(sum.Injuries))
	}
	if sum.GameInfo == nil || sum.GameInfo.Venue == nil || sum.GameInfo.Venue.FullName != "Levi's Stadium" {
		t.Errorf("unexpected game info %+v", sum.GameInfo)
	}
}

func TestClient_PlayByPlayAndRoster(t *testing.T) {
	u := testutil.NewUpstream(t)
	c := newTestClient(u)
	ctx := context.Background()

	pbp, err := c.PlayByPlay(ctx, "401772988")
	if err != nil {
		t.Fatal(err)
	}
	if len(pbp.GamePackage.Plays) != 14 {
		t.Errorf("expected 14 plays, got %d", len(pbp.GamePackage.Plays))
	}

	r, err := c.Roster(ctx, "NE")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Athletes) != 1 || len(r.Athletes[0].Items) != 4 {
		t.Errorf("unexpected roster %+v", r)
	}
	if u.Calls(testutil.RosterPath("NE")) != 1 {
		t.Errorf("expected lower-case roster path to be hit once")
	}
}

func TestClient_RequestShape(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/summary", srv.URL+"/pbp", srv.URL+"/%s", time.Second)

	if _, err := c.Summary(context.Background(), "42"); err != nil {
		t.Fatal(err)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("expected browser user agent, got %q", gotUA)
	}
	if gotQuery != "event=42" {
		t.Errorf("expected event=42, got %q", gotQuery)
	}

	if _, err := c.PlayByPlay(context.Background(), "42"); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "gameId=42&xhr=1" {
		t.Errorf("expected gameId=42&xhr=1, got %q", gotQuery)
	}
}

func TestClient_StatusError(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.SetStatus(testutil.PathSummary, http.StatusBadGateway)
	c := newTestClient(u)

	_, err := c.Summary(context.Background(), "401772988")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", se.StatusCode)
	}
}

func TestClient_Timeout(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.SetDelay(500 * time.Millisecond)
	c := New(u.SummaryURL(), u.PlayByPlayURL(), u.RosterURL(), 50*time.Millisecond)

	start := time.Now()
	if _, err := c.Summary(context.Background(), "401772988"); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 400*time.Millisecond {
		t.Errorf("request was not bounded by the client timeout")
	}
}

func TestClient_DecodeError(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.SetDocument(testutil.PathSummary, []byte(`<html>not json</html>`))
	c := newTestClient(u)

	if _, err := c.Summary(context.Background(), "401772988"); err == nil {
		t.Fatal("expected decode error")
	}
}
