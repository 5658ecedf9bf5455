package models

import "time"

// Game status constants
const (
	StatusPregame  = "PREGAME"
	StatusLive     = "LIVE"
	StatusHalftime = "HALFTIME"
	StatusFinal    = "FINAL"
)

// Stat sources, lowest precedence first. A player stat category written by
// SourceBoxscore is never replaced by a placeholder source.
const (
	SourceLeaders  = "leaders"
	SourceInjuries = "injuries"
	SourceBoxscore = "boxscore"
)

type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// GameSnapshot is rebuilt from upstream documents on every fetch. Pregame
// snapshots only carry the countdown fields.
type GameSnapshot struct {
	GameStarted    bool                `json:"gameStarted"`
	EventID        string              `json:"eventId,omitempty"`
	Status         string              `json:"status"`
	Countdown      *Countdown          `json:"countdown,omitempty"`
	KickoffAt      *time.Time          `json:"kickoffAt,omitempty"`
	KickoffIn      string              `json:"kickoffIn,omitempty"`
	Quarter        *int                `json:"quarter,omitempty"`
	TimeRemaining  string              `json:"timeRemaining,omitempty"`
	Teams          map[string]TeamView `json:"teams,omitempty"`
	FieldPosition  *FieldPosition      `json:"fieldPosition,omitempty"`
	Down           *int                `json:"down,omitempty"`
	YardsToGo      *int                `json:"yardsToGo,omitempty"`
	LastPlay       string              `json:"lastPlay,omitempty"`
	WinProbability *WinProbability     `json:"winProbability,omitempty"`
	Plays          []Play              `json:"plays,omitempty"`
	ScoringPlays   []ScoringPlay       `json:"scoringPlays,omitempty"`
	Drives         *Drives             `json:"drives,omitempty"`
	Leaders        []LeaderCategory    `json:"leaders,omitempty"`
	Venue          *Venue              `json:"venue,omitempty"`
	Weather        *Weather            `json:"weather,omitempty"`
}

type TeamView struct {
	Name         string            `json:"name"`
	Abbreviation string            `json:"abbreviation"`
	Score        int               `json:"score"`
	Timeouts     *int              `json:"timeouts,omitempty"`
	Possession   bool              `json:"possession"`
	Record       string            `json:"record,omitempty"`
	Logo         string            `json:"logo,omitempty"`
	Stats        map[string]string `json:"stats"`
	Players      []PlayerView      `json:"players"`
}

// PlayerView merges a player's leader, injury and boxscore entries.
// Stats maps category name to label to value.
type PlayerView struct {
	ID       string                       `json:"id"`
	Name     string                       `json:"name"`
	Position string                       `json:"position,omitempty"`
	Jersey   string                       `json:"jersey,omitempty"`
	Headshot string                       `json:"headshot,omitempty"`
	Stats    map[string]map[string]string `json:"stats"`
}

type FieldPosition struct {
	Team     string `json:"team,omitempty"`
	YardLine int    `json:"yardLine"`
}

type WinProbability struct {
	HomeWinPercentage *float64 `json:"homeWinPercentage,omitempty"`
	AwayWinPercentage *float64 `json:"awayWinPercentage,omitempty"`
	TiePercentage     *float64 `json:"tiePercentage,omitempty"`
	PlayID            string   `json:"playId,omitempty"`
}

type Play struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Type        string `json:"type,omitempty"`
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
	ScoringPlay bool   `json:"scoringPlay"`
}

type ScoringPlay struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Period      int    `json:"period"`
	Clock       string `json:"clock"`
	ScoringTeam string `json:"scoringTeam"`
	Type        string `json:"type"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

type DriveSummary struct {
	Team        string `json:"team"`
	Description string `json:"description,omitempty"`
	Plays       int    `json:"plays"`
	Yards       int    `json:"yards"`
	Result      string `json:"result,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Elapsed     string `json:"elapsed,omitempty"`
}

type Drives struct {
	Current *DriveSummary  `json:"current"`
	All     []DriveSummary `json:"all"`
}

type LeaderEntry struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	Headshot     string `json:"headshot,omitempty"`
	DisplayValue string `json:"displayValue"`
	Value        string `json:"value,omitempty"`
}

type LeaderCategory struct {
	Team        string        `json:"team"`
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	Leaders     []LeaderEntry `json:"leaders"`
}

type Venue struct {
	Name     string `json:"name,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Capacity *int   `json:"capacity,omitempty"`
	Indoor   *bool  `json:"indoor,omitempty"`
}

type Weather struct {
	DisplayValue  string `json:"displayValue,omitempty"`
	Temperature   *int   `json:"temperature,omitempty"`
	ConditionID   string `json:"conditionId,omitempty"`
	Gust          *int   `json:"gust,omitempty"`
	Precipitation *int   `json:"precipitation,omitempty"`
}

// GameProbe reports which parts of a live snapshot the upstream populated.
type GameProbe struct {
	Success       bool                  `json:"success"`
	EventID       string                `json:"eventId"`
	DataStructure map[string]any        `json:"dataStructure"`
	SampleData    map[string]TeamSample `json:"sampleData"`
}

type TeamSample struct {
	Name         string      `json:"name"`
	Score        int         `json:"score"`
	StatsKeys    []string    `json:"statsKeys"`
	SamplePlayer *PlayerView `json:"samplePlayer"`
}
