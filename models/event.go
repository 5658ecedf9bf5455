package models

import (
	"fmt"
	"strings"
	"time"
)

// TeamRef identifies one side of the event: the public key used in the API
// ("patriots") and the upstream abbreviation ("NE").
type TeamRef struct {
	Key  string
	Abbr string
}

// Event is the single game the service is configured for. Kickoff closes
// voting and starts live feed fetching.
type Event struct {
	GameID  string
	Kickoff time.Time
	Home    TeamRef
	Away    TeamRef
}

// Teams returns the two team keys, home first.
func (e Event) Teams() [2]string {
	return [2]string{e.Home.Key, e.Away.Key}
}

// HasTeam reports whether key names one of the two teams.
func (e Event) HasTeam(key string) bool {
	return key != "" && (key == e.Home.Key || key == e.Away.Key)
}

// Started reports whether now is at or after kickoff.
func (e Event) Started(now time.Time) bool {
	return !now.Before(e.Kickoff)
}

// Validate checks the event is usable.
func (e Event) Validate() error {
	if e.GameID == "" {
		return fmt.Errorf("game id is required")
	}
	if e.Kickoff.IsZero() {
		return fmt.Errorf("kickoff is required")
	}
	for _, t := range []TeamRef{e.Home, e.Away} {
		if t.Key == "" || t.Abbr == "" {
			return fmt.Errorf("team %q needs both key and abbreviation", t.Key)
		}
		if t.Key == "total" || t.Key == "percentages" {
			return fmt.Errorf("team key %q is reserved", t.Key)
		}
	}
	if e.Home.Key == e.Away.Key {
		return fmt.Errorf("team keys must differ")
	}
	if strings.EqualFold(e.Home.Abbr, e.Away.Abbr) {
		return fmt.Errorf("team abbreviations must differ")
	}
	return nil
}

// ParseTeamRef parses "key:ABBR", e.g. "patriots:NE".
func ParseTeamRef(s string) (TeamRef, error) {
	key, abbr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TeamRef{}, fmt.Errorf("team %q must be key:ABBR", s)
	}
	ref := TeamRef{Key: strings.TrimSpace(key), Abbr: strings.ToUpper(strings.TrimSpace(abbr))}
	if ref.Key == "" || ref.Abbr == "" {
		return TeamRef{}, fmt.Errorf("team %q must be key:ABBR", s)
	}
	return ref, nil
}
