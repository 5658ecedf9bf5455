package gamefeed

import (
	"strings"

	"github.com/danielhkuo/gameday/espn"
	"github.com/danielhkuo/gameday/models"
)

// Higher rank wins. Leader and injury entries are placeholders that a live
// boxscore category replaces; a boxscore category is never replaced by them.
var sourceRank = map[string]int{
	models.SourceLeaders:  0,
	models.SourceInjuries: 1,
	models.SourceBoxscore: 2,
}

// Leader categories that describe the same stat table as a boxscore category.
var leaderCategory = map[string]string{
	"passingYards":   "passing",
	"rushingYards":   "rushing",
	"receivingYards": "receiving",
}

// InjuryCategory is the stats key holding a player's injury report.
const InjuryCategory = "injury"

// playerBook accumulates one team's players keyed by athlete id, keeping
// first-seen order.
type playerBook struct {
	order   []string
	players map[string]*models.PlayerView
	sources map[string]map[string]string
}

func newPlayerBook() *playerBook {
	return &playerBook{
		players: make(map[string]*models.PlayerView),
		sources: make(map[string]map[string]string),
	}
}

func (b *playerBook) ensure(a espn.Athlete) *models.PlayerView {
	p, ok := b.players[a.ID]
	if !ok {
		p = &models.PlayerView{ID: a.ID, Stats: make(map[string]map[string]string)}
		b.players[a.ID] = p
		b.sources[a.ID] = make(map[string]string)
		b.order = append(b.order, a.ID)
	}
	fillIdentity(p, a)
	return p
}

// set stores one stat category for a player unless a higher ranked source
// already wrote it.
func (b *playerBook) set(a espn.Athlete, category, source string, stats map[string]string) {
	if a.ID == "" || category == "" {
		return
	}
	p := b.ensure(a)
	if prev, ok := b.sources[a.ID][category]; ok && sourceRank[prev] > sourceRank[source] {
		return
	}
	p.Stats[category] = stats
	b.sources[a.ID][category] = source
}

// identify fills blank identity fields of a player already in the book.
func (b *playerBook) identify(a espn.Athlete) {
	if p, ok := b.players[a.ID]; ok {
		fillIdentity(p, a)
	}
}

func (b *playerBook) list() []models.PlayerView {
	out := make([]models.PlayerView, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.players[id])
	}
	return out
}

func fillIdentity(p *models.PlayerView, a espn.Athlete) {
	if p.Name == "" {
		p.Name = a.DisplayName
	}
	if p.Position == "" {
		p.Position = a.PositionAbbr()
	}
	if p.Jersey == "" {
		p.Jersey = a.Jersey
	}
	if p.Headshot == "" {
		p.Headshot = a.HeadshotURL()
	}
}

// mergePlayers builds each team's player list from leaders, injuries and the
// boxscore, then lets rosters fill identity fields. Result is keyed by team key.
func mergePlayers(ev models.Event, sum *espn.Summary, rosters map[string]*espn.Roster) map[string][]models.PlayerView {
	books := map[string]*playerBook{
		ev.Home.Key: newPlayerBook(),
		ev.Away.Key: newPlayerBook(),
	}
	bookFor := func(ref espn.TeamRef) *playerBook {
		switch {
		case strings.EqualFold(ref.Abbreviation, ev.Home.Abbr):
			return books[ev.Home.Key]
		case strings.EqualFold(ref.Abbreviation, ev.Away.Abbr):
			return books[ev.Away.Key]
		}
		return nil
	}

	for _, tl := range sum.Leaders {
		b := bookFor(tl.Team)
		if b == nil {
			continue
		}
		for _, cat := range tl.Leaders {
			key := cat.Name
			if mapped, ok := leaderCategory[cat.Name]; ok {
				key = mapped
			}
			for _, l := range cat.Leaders {
				stats := map[string]string{"displayValue": l.DisplayValue}
				if v := l.Value.String(); v != "" {
					stats["value"] = v
				}
				b.set(l.Athlete, key, models.SourceLeaders, stats)
			}
		}
	}

	for _, ti := range sum.Injuries {
		b := bookFor(ti.Team)
		if b == nil {
			continue
		}
		for _, inj := range ti.Injuries {
			stats := map[string]string{"status": inj.Status}
			switch {
			case inj.Type != nil && inj.Type.Description != "":
				stats["type"] = inj.Type.Description
			case inj.Details != nil && inj.Details.Type != "":
				stats["type"] = inj.Details.Type
			}
			b.set(inj.Athlete, InjuryCategory, models.SourceInjuries, stats)
		}
	}

	for _, bp := range sum.Boxscore.Players {
		b := bookFor(bp.Team)
		if b == nil {
			continue
		}
		for _, cat := range bp.Statistics {
			for _, ba := range cat.Athletes {
				b.set(ba.Athlete, cat.Name, models.SourceBoxscore, boxscoreLine(cat, ba.Stats))
			}
		}
	}

	for key, r := range rosters {
		b, ok := books[key]
		if !ok || r == nil {
			continue
		}
		for _, group := range r.Athletes {
			for _, a := range group.Items {
				b.identify(a)
			}
		}
	}

	out := make(map[string][]models.PlayerView, 2)
	for key, b := range books {
		out[key] = b.list()
	}
	return out
}

// boxscoreLine pairs stat values with the category labels, falling back to
// keys when labels are short.
func boxscoreLine(cat espn.BoxscoreCategory, values []string) map[string]string {
	line := make(map[string]string, len(values))
	for i, v := range values {
		switch {
		case i < len(cat.Labels) && cat.Labels[i] != "":
			line[cat.Labels[i]] = v
		case i < len(cat.Keys) && cat.Keys[i] != "":
			line[cat.Keys[i]] = v
		}
	}
	return line
}
