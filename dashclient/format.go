// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashclient

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/gameday/models"
)

// Line renders the state as a single status line for terminal output.
func (s State) Line() string {
	var parts []string

	switch {
	case s.Game != nil:
		parts = append(parts, gameLine(*s.Game))
	case s.GameErr != nil:
		parts = append(parts, "game: "+s.GameErr.Error())
	default:
		parts = append(parts, "game: waiting")
	}

	switch {
	case s.Votes != nil:
		parts = append(parts, votesLine(*s.Votes))
	case s.VotesErr != nil:
		parts = append(parts, "votes: "+s.VotesErr.Error())
	default:
		parts = append(parts, "votes: waiting")
	}

	return strings.Join(parts, " | ")
}

func gameLine(g models.GameSnapshot) string {
	if !g.GameStarted {
		if g.KickoffIn != "" {
			return "kickoff " + g.KickoffIn
		}
		if c := g.Countdown; c != nil {
			return fmt.Sprintf("kickoff in %dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
		}
		return models.StatusPregame
	}

	// Teams is a map; sort for a stable line.
	keys := make([]string, 0, len(g.Teams))
	for k := range g.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var score []string
	for _, k := range keys {
		t := g.Teams[k]
		mark := ""
		if t.Possession {
			mark = "*"
		}
		score = append(score, fmt.Sprintf("%s%s %d", t.Abbreviation, mark, t.Score))
	}

	line := strings.Join(score, " - ")
	switch g.Status {
	case models.StatusLive:
		if g.Quarter != nil {
			line = fmt.Sprintf("Q%d %s %s", *g.Quarter, g.TimeRemaining, line)
		}
	default:
		line = g.Status + " " + line
	}
	return line
}

func votesLine(t models.Tally) string {
	var parts []string
	for _, team := range t.Teams {
		if team == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s (%d%%)", team, humanize.Comma(int64(t.Count(team))), t.Percent(team)))
	}
	return fmt.Sprintf("votes: %s, %s total", strings.Join(parts, " "), humanize.Comma(int64(t.Total)))
}
