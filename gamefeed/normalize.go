package gamefeed

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielhkuo/gameday/espn"
	"github.com/danielhkuo/gameday/models"
)

// MaxPlays is how many play-by-play entries a snapshot carries.
const MaxPlays = 12

// Normalize maps the upstream documents into a live snapshot. rosters is
// keyed by team key and may be missing entries.
func Normalize(ev models.Event, sum *espn.Summary, pbp *espn.PlayByPlay, rosters map[string]*espn.Roster) (models.GameSnapshot, error) {
	if sum == nil || len(sum.Header.Competitions) == 0 {
		return models.GameSnapshot{}, fmt.Errorf("%w: summary has no competition", ErrUpstreamUnavailable)
	}
	comp := &sum.Header.Competitions[0]

	home := findCompetitor(comp, ev.Home.Abbr)
	away := findCompetitor(comp, ev.Away.Abbr)
	if home == nil || away == nil {
		return models.GameSnapshot{}, fmt.Errorf("%w: summary is missing %s or %s", ErrUpstreamUnavailable, ev.Home.Abbr, ev.Away.Abbr)
	}

	sit := sum.Situation
	if sit == nil {
		sit = comp.Situation
	}

	status, quarter, clock := extractStatus(comp.Status)
	possession := possessor(ev, sit, home, away)

	eventID := sum.Header.ID
	if eventID == "" {
		eventID = ev.GameID
	}

	snap := models.GameSnapshot{
		GameStarted:   true,
		EventID:       eventID,
		Status:        status,
		Quarter:       quarter,
		TimeRemaining: clock,
		Teams:         extractTeams(ev, home, away, sit, possession),
		LastPlay:      extractLastPlay(sum, sit),
		Plays:         extractPlays(pbp),
		ScoringPlays:  extractScoringPlays(sum.ScoringPlays),
		Drives:        extractDrives(sum.Drives),
		Leaders:       extractLeaders(sum.Leaders),
		Venue:         extractVenue(comp, sum.GameInfo),
		Weather:       extractWeather(comp, sum.GameInfo),
	}
	snap.FieldPosition, snap.Down, snap.YardsToGo = extractSituation(sit, possession)
	snap.WinProbability = extractWinProbability(sum.WinProbability)

	players := mergePlayers(ev, sum, rosters)
	for _, side := range []struct {
		ref models.TeamRef
		c   *espn.Competitor
	}{{ev.Home, home}, {ev.Away, away}} {
		tv := snap.Teams[side.ref.Key]
		tv.Stats = mergeTeamStats(side.c.Statistics, boxscoreTeamStats(sum.Boxscore, side.ref.Abbr))
		tv.Players = players[side.ref.Key]
		snap.Teams[side.ref.Key] = tv
	}

	return snap, nil
}

func findCompetitor(comp *espn.Competition, abbr string) *espn.Competitor {
	for i := range comp.Competitors {
		if strings.EqualFold(comp.Competitors[i].Team.Abbreviation, abbr) {
			return &comp.Competitors[i]
		}
	}
	return nil
}

// extractStatus maps the upstream state: in → LIVE (HALFTIME at the half),
// post → FINAL, anything else → PREGAME.
func extractStatus(st espn.Status) (status string, quarter *int, clock string) {
	switch st.Type.State {
	case "in":
		status = models.StatusLive
		if st.Type.Name == "STATUS_HALFTIME" {
			status = models.StatusHalftime
		}
	case "post":
		status = models.StatusFinal
	default:
		status = models.StatusPregame
	}

	if st.Period != nil {
		q := *st.Period
		quarter = &q
	}

	clock = st.DisplayClock
	if clock == "" {
		clock = st.Type.ShortDetail
	}
	return status, quarter, clock
}

// possessor returns the key of the team with the ball, or "".
// ESPN reports possession as a team id, an abbreviation, or a flag on the
// competitor depending on the document.
func possessor(ev models.Event, sit *espn.Situation, home, away *espn.Competitor) string {
	sides := []struct {
		key string
		c   *espn.Competitor
	}{{ev.Home.Key, home}, {ev.Away.Key, away}}

	if sit != nil {
		if p := strings.TrimSpace(sit.Possession); p != "" {
			for _, s := range sides {
				if strings.EqualFold(p, s.c.Team.Abbreviation) || p == s.c.Team.ID || p == s.c.ID {
					return s.key
				}
			}
		}
		if txt := strings.TrimSpace(sit.PossessionText); txt != "" {
			abbr, _, _ := strings.Cut(txt, " ")
			for _, s := range sides {
				if strings.EqualFold(abbr, s.c.Team.Abbreviation) {
					return s.key
				}
			}
		}
	}

	for _, s := range sides {
		if s.c.Possession {
			return s.key
		}
	}
	return ""
}

func extractTeams(ev models.Event, home, away *espn.Competitor, sit *espn.Situation, possession string) map[string]models.TeamView {
	teams := make(map[string]models.TeamView, 2)
	for _, side := range []struct {
		key string
		c   *espn.Competitor
	}{{ev.Home.Key, home}, {ev.Away.Key, away}} {
		c := side.c
		teams[side.key] = models.TeamView{
			Name:         c.Team.DisplayName,
			Abbreviation: c.Team.Abbreviation,
			Score:        c.Score.IntOr(0),
			Timeouts:     timeouts(c, sit),
			Possession:   possession == side.key,
			Record:       record(c.Record),
			Logo:         logo(c.Team),
			Stats:        map[string]string{},
			Players:      []models.PlayerView{},
		}
	}
	return teams
}

func timeouts(c *espn.Competitor, sit *espn.Situation) *int {
	if v, ok := flexInt(c.Timeouts); ok {
		return &v
	}
	if sit == nil {
		return nil
	}
	src := sit.AwayTimeouts
	if c.HomeAway == "home" {
		src = sit.HomeTimeouts
	}
	if v, ok := flexInt(src); ok {
		return &v
	}
	return nil
}

func record(recs []espn.Record) string {
	for _, r := range recs {
		if r.Type == "total" {
			return r.Summary
		}
	}
	if len(recs) > 0 {
		return recs[0].Summary
	}
	return ""
}

func logo(t espn.Team) string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}

// extractSituation returns field position (only when a yard line is
// reported), down and distance.
func extractSituation(sit *espn.Situation, possession string) (*models.FieldPosition, *int, *int) {
	if sit == nil {
		return nil, nil, nil
	}

	var fp *models.FieldPosition
	if yl, ok := flexInt(sit.YardLine); ok {
		fp = &models.FieldPosition{Team: possession, YardLine: yl}
	}

	var down, togo *int
	if v, ok := flexInt(sit.Down); ok && v > 0 {
		down = &v
	}
	if v, ok := flexInt(sit.Distance); ok && v >= 0 {
		togo = &v
	}
	return fp, down, togo
}

func extractLastPlay(sum *espn.Summary, sit *espn.Situation) string {
	if sit != nil && sit.LastPlay != nil && sit.LastPlay.Text != "" {
		return sit.LastPlay.Text
	}
	if sum.Drives != nil && sum.Drives.Current != nil {
		if plays := sum.Drives.Current.Plays; len(plays) > 0 {
			return plays[len(plays)-1].Text
		}
	}
	if sum.LastPlay != nil {
		return sum.LastPlay.Text
	}
	return ""
}

// extractWinProbability uses the latest entry.
func extractWinProbability(wp []espn.WinProbability) *models.WinProbability {
	if len(wp) == 0 {
		return nil
	}
	last := wp[len(wp)-1]
	out := &models.WinProbability{
		HomeWinPercentage: last.HomeWinPercentage,
		TiePercentage:     last.TiePercentage,
		PlayID:            last.PlayID,
	}
	if last.HomeWinPercentage != nil {
		tie := 0.0
		if last.TiePercentage != nil {
			tie = *last.TiePercentage
		}
		away := math.Round((1-*last.HomeWinPercentage-tie)*1e4) / 1e4
		out.AwayWinPercentage = &away
	}
	return out
}

// extractPlays keeps the first MaxPlays entries in upstream order.
func extractPlays(pbp *espn.PlayByPlay) []models.Play {
	if pbp == nil {
		return []models.Play{}
	}
	src := pbp.GamePackage.Plays
	if len(src) > MaxPlays {
		src = src[:MaxPlays]
	}

	plays := make([]models.Play, 0, len(src))
	for _, p := range src {
		play := models.Play{
			ID:          p.ID,
			Text:        p.Text,
			Period:      p.Period.Number,
			Clock:       p.Clock.DisplayValue,
			HomeScore:   p.HomeScore.IntOr(0),
			AwayScore:   p.AwayScore.IntOr(0),
			ScoringPlay: p.ScoringPlay,
		}
		if p.Type != nil {
			play.Type = p.Type.Text
		}
		plays = append(plays, play)
	}
	return plays
}

func extractScoringPlays(src []espn.ScoringPlay) []models.ScoringPlay {
	out := make([]models.ScoringPlay, 0, len(src))
	for _, p := range src {
		out = append(out, models.ScoringPlay{
			ID:          p.ID,
			Text:        p.Text,
			Period:      p.Period.Number,
			Clock:       p.Clock.DisplayValue,
			ScoringTeam: p.Team.Abbreviation,
			Type:        p.Type.Text,
			HomeScore:   p.HomeScore.IntOr(0),
			AwayScore:   p.AwayScore.IntOr(0),
		})
	}
	return out
}

func extractDrives(src *espn.Drives) *models.Drives {
	if src == nil {
		return nil
	}
	out := &models.Drives{All: make([]models.DriveSummary, 0, len(src.Previous))}
	if src.Current != nil {
		d := driveSummary(*src.Current)
		out.Current = &d
	}
	for _, d := range src.Previous {
		out.All = append(out.All, driveSummary(d))
	}
	return out
}

func driveSummary(d espn.Drive) models.DriveSummary {
	plays := len(d.Plays)
	if v, ok := flexInt(d.OffensivePlays); ok {
		plays = v
	}
	result := d.DisplayResult
	if result == "" {
		result = d.Result
	}

	s := models.DriveSummary{
		Team:        d.Team.Abbreviation,
		Description: d.Description,
		Plays:       plays,
		Yards:       d.Yards.IntOr(0),
		Result:      result,
	}
	if d.Start != nil && d.Start.Clock != nil {
		s.StartTime = d.Start.Clock.DisplayValue
	}
	if d.End != nil && d.End.Clock != nil {
		s.EndTime = d.End.Clock.DisplayValue
	}
	if d.TimeElapsed != nil {
		s.Elapsed = d.TimeElapsed.DisplayValue
	}
	return s
}

func extractLeaders(src []espn.TeamLeaders) []models.LeaderCategory {
	var out []models.LeaderCategory
	for _, tl := range src {
		for _, cat := range tl.Leaders {
			lc := models.LeaderCategory{
				Team:        tl.Team.Abbreviation,
				Name:        cat.Name,
				DisplayName: cat.DisplayName,
				Leaders:     make([]models.LeaderEntry, 0, len(cat.Leaders)),
			}
			for _, l := range cat.Leaders {
				lc.Leaders = append(lc.Leaders, models.LeaderEntry{
					PlayerID:     l.Athlete.ID,
					Name:         l.Athlete.DisplayName,
					Headshot:     l.Athlete.HeadshotURL(),
					DisplayValue: l.DisplayValue,
					Value:        l.Value.String(),
				})
			}
			out = append(out, lc)
		}
	}
	return out
}

func extractVenue(comp *espn.Competition, info *espn.GameInfo) *models.Venue {
	v := comp.Venue
	if v == nil && info != nil {
		v = info.Venue
	}
	if v == nil {
		return nil
	}

	out := &models.Venue{
		Name:   v.FullName,
		City:   v.Address.City,
		State:  v.Address.State,
		Indoor: v.Indoor,
	}
	if c, ok := flexInt(v.Capacity); ok {
		out.Capacity = &c
	}
	return out
}

func extractWeather(comp *espn.Competition, info *espn.GameInfo) *models.Weather {
	w := comp.Weather
	if w == nil && info != nil {
		w = info.Weather
	}
	if w == nil {
		return nil
	}

	out := &models.Weather{
		DisplayValue: w.DisplayValue,
		ConditionID:  w.ConditionID,
	}
	if v, ok := flexInt(w.Temperature); ok {
		out.Temperature = &v
	}
	if v, ok := flexInt(w.Gust); ok {
		out.Gust = &v
	}
	if v, ok := flexInt(w.Precipitation); ok {
		out.Precipitation = &v
	}
	return out
}

// mergeTeamStats flattens both stat lists. Live competitor values win;
// boxscore values only fill names the competitor list lacks.
func mergeTeamStats(live, boxscore []espn.Stat) map[string]string {
	out := make(map[string]string, len(live)+len(boxscore))
	for _, s := range live {
		if s.Name != "" {
			out[s.Name] = statValue(s)
		}
	}
	for _, s := range boxscore {
		if s.Name == "" {
			continue
		}
		if _, ok := out[s.Name]; !ok {
			out[s.Name] = statValue(s)
		}
	}
	return out
}

func boxscoreTeamStats(box espn.Boxscore, abbr string) []espn.Stat {
	for _, t := range box.Teams {
		if strings.EqualFold(t.Team.Abbreviation, abbr) {
			return t.Statistics
		}
	}
	return nil
}

func statValue(s espn.Stat) string {
	if s.DisplayValue != "" {
		return s.DisplayValue
	}
	return s.Value.String()
}

func flexInt(f *espn.Flex) (int, bool) {
	if f == nil {
		return 0, false
	}
	return f.Int()
}
