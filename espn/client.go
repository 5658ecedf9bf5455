package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultUserAgent is sent on every request; ESPN rejects some bare clients.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("espn GET %s -> %d", e.URL, e.StatusCode)
}

type Client struct {
	SummaryURL    string
	PlayByPlayURL string
	// RosterURL is a template; %s is replaced by the lower-case team abbreviation.
	RosterURL string
	UserAgent string
	HTTP      *http.Client
}

func New(summaryURL, playByPlayURL, rosterURL string, timeout time.Duration) *Client {
	return &Client{
		SummaryURL:    summaryURL,
		PlayByPlayURL: playByPlayURL,
		RosterURL:     rosterURL,
		UserAgent:     DefaultUserAgent,
		HTTP:          &http.Client{Timeout: timeout},
	}
}

// Summary fetches the game summary for an event id.
func (c *Client) Summary(ctx context.Context, gameID string) (*Summary, error) {
	var out Summary
	if err := c.get(ctx, c.SummaryURL, url.Values{"event": {gameID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayByPlay fetches the play-by-play document for an event id.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) (*PlayByPlay, error) {
	var out PlayByPlay
	if err := c.get(ctx, c.PlayByPlayURL, url.Values{"xhr": {"1"}, "gameId": {gameID}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Roster fetches a team roster by abbreviation.
func (c *Client) Roster(ctx context.Context, abbr string) (*Roster, error) {
	var out Roster
	u := strings.ReplaceAll(c.RosterURL, "%s", url.PathEscape(strings.ToLower(abbr)))
	if err := c.get(ctx, u, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, base string, params url.Values, v any) error {
	u := base
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		u = base + sep + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("espn GET %s: %w", u, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("espn GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("espn GET %s: decode: %w", u, err)
	}
	return nil
}
