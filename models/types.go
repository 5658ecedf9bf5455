package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Request types

type SubmitVoteRequest struct {
	Team string `json:"team"`
}

// Response types

type SubmitVoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Votes   Tally  `json:"votes"`
}

type ResetVotesResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type DatabaseStatus struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
}

type StatusResponse struct {
	Status     string         `json:"status"`
	Database   DatabaseStatus `json:"database"`
	VoteCount  *int           `json:"voteCount,omitempty"`
	VotingOpen bool           `json:"votingOpen"`
	Uptime     string         `json:"uptime"`
}

// ServiceInfo is the GET / description.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Domain types

type Vote struct {
	ID      string    `json:"id"`
	Team    string    `json:"team"`
	VotedAt time.Time `json:"votedAt"`
	IPHash  *string   `json:"-"` // Never expose in JSON
}

// RecentVote is the public projection of a vote.
type RecentVote struct {
	Team    string    `json:"team"`
	VotedAt time.Time `json:"votedAt"`
}

// Tally is the aggregate of all stored votes. It is never persisted.
//
// It marshals to a flat object keyed by the configured team keys:
//
//	{"patriots":3,"seahawks":1,"total":4,"percentages":{"patriots":75,"seahawks":25}}
type Tally struct {
	Teams       [2]string
	Counts      map[string]int
	Total       int
	Percentages map[string]int
}

// Count returns the vote count for a team key.
func (t Tally) Count(team string) int { return t.Counts[team] }

// Percent returns the rounded percentage for a team key.
func (t Tally) Percent(team string) int { return t.Percentages[team] }

func (t Tally) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4)
	pct := make(map[string]int, 2)
	for _, team := range t.Teams {
		out[team] = t.Counts[team]
		pct[team] = t.Percentages[team]
	}
	out["total"] = t.Total
	out["percentages"] = pct
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat shape written by MarshalJSON. Every key other
// than total and percentages is a team; Teams is filled in key order.
func (t *Tally) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := Tally{Counts: make(map[string]int), Percentages: make(map[string]int)}
	if v, ok := raw["total"]; ok {
		if err := json.Unmarshal(v, &out.Total); err != nil {
			return err
		}
	}
	if v, ok := raw["percentages"]; ok {
		if err := json.Unmarshal(v, &out.Percentages); err != nil {
			return err
		}
	}

	var teams []string
	for k, v := range raw {
		if k == "total" || k == "percentages" {
			continue
		}
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			return err
		}
		out.Counts[k] = n
		teams = append(teams, k)
	}
	sort.Strings(teams)
	copy(out.Teams[:], teams)

	*t = out
	return nil
}

type VoteAnalytics struct {
	VotesLast24Hours    int `json:"votesLast24Hours"`
	AverageVotesPerHour int `json:"averageVotesPerHour"`
}

type VoteStats struct {
	Totals    Tally         `json:"totals"`
	Recent    []RecentVote  `json:"recent"`
	Analytics VoteAnalytics `json:"analytics"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
