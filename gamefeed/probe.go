package gamefeed

import (
	"context"
	"sort"

	"github.com/danielhkuo/gameday/models"
)

// Probe always fetches, ignoring kickoff and the cache, and reports which
// parts of the snapshot the upstream populated.
func (f *Feed) Probe(ctx context.Context) (models.GameProbe, error) {
	snap, err := f.fetch(ctx)
	if err != nil {
		return models.GameProbe{}, err
	}
	return BuildProbe(f.event, snap), nil
}

func BuildProbe(ev models.Event, snap models.GameSnapshot) models.GameProbe {
	_, hasHome := snap.Teams[ev.Home.Key]
	_, hasAway := snap.Teams[ev.Away.Key]

	ds := map[string]any{
		"hasTeams":          hasHome && hasAway,
		"hasScoringPlays":   len(snap.ScoringPlays) > 0,
		"scoringPlayCount":  len(snap.ScoringPlays),
		"hasPlays":          len(snap.Plays) > 0,
		"playCount":         len(snap.Plays),
		"hasDrives":         snap.Drives != nil,
		"hasVenue":          snap.Venue != nil,
		"hasWeather":        snap.Weather != nil,
		"hasLeaders":        len(snap.Leaders) > 0,
		"hasWinProbability": snap.WinProbability != nil,
	}

	samples := make(map[string]models.TeamSample, 2)
	for _, key := range ev.Teams() {
		tv := snap.Teams[key]
		ds[key+"StatCount"] = len(tv.Stats)
		ds[key+"PlayerCount"] = len(tv.Players)

		keys := make([]string, 0, len(tv.Stats))
		for k := range tv.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sample := models.TeamSample{Name: tv.Name, Score: tv.Score, StatsKeys: keys}
		if len(tv.Players) > 0 {
			p := tv.Players[0]
			sample.SamplePlayer = &p
		}
		samples[key] = sample
	}

	return models.GameProbe{
		Success:       true,
		EventID:       snap.EventID,
		DataStructure: ds,
		SampleData:    samples,
	}
}
