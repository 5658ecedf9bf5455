package espn

// Summary is the subset of the ESPN game summary document the feed reads.
type Summary struct {
	Header         Header           `json:"header"`
	Boxscore       Boxscore         `json:"boxscore"`
	Situation      *Situation       `json:"situation"`
	Drives         *Drives          `json:"drives"`
	ScoringPlays   []ScoringPlay    `json:"scoringPlays"`
	Leaders        []TeamLeaders    `json:"leaders"`
	Injuries       []TeamInjuries   `json:"injuries"`
	WinProbability []WinProbability `json:"winprobability"`
	GameInfo       *GameInfo        `json:"gameInfo"`
	LastPlay       *PlayText        `json:"lastPlay"`
}

type Header struct {
	ID           string        `json:"id"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	ID          string       `json:"id"`
	Status      Status       `json:"status"`
	Competitors []Competitor `json:"competitors"`
	Situation   *Situation   `json:"situation"`
	Venue       *Venue       `json:"venue"`
	Weather     *Weather     `json:"weather"`
}

type Status struct {
	DisplayClock string     `json:"displayClock"`
	Period       *int       `json:"period"`
	Type         StatusType `json:"type"`
}

type StatusType struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
	Completed   bool   `json:"completed"`
}

type Competitor struct {
	ID         string      `json:"id"`
	HomeAway   string      `json:"homeAway"`
	Score      Flex        `json:"score"`
	Possession bool        `json:"possession"`
	Timeouts   *Flex       `json:"timeouts"`
	Team       Team        `json:"team"`
	Record     []Record    `json:"record"`
	Statistics []Stat      `json:"statistics"`
	Linescores []LineScore `json:"linescores"`
}

type Team struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
	Logos        []Logo `json:"logos"`
}

type Logo struct {
	Href string `json:"href"`
}

type Record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type LineScore struct {
	DisplayValue string `json:"displayValue"`
}

// Stat is one entry of a team statistics list.
type Stat struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	DisplayValue string `json:"displayValue"`
	Value        Flex   `json:"value"`
}

type Situation struct {
	Down           *Flex     `json:"down"`
	Distance       *Flex     `json:"distance"`
	YardLine       *Flex     `json:"yardLine"`
	Possession     string    `json:"possession"`
	PossessionText string    `json:"possessionText"`
	IsRedZone      bool      `json:"isRedZone"`
	HomeTimeouts   *Flex     `json:"homeTimeouts"`
	AwayTimeouts   *Flex     `json:"awayTimeouts"`
	LastPlay       *PlayText `json:"lastPlay"`
}

type PlayText struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Drives struct {
	Current  *Drive  `json:"current"`
	Previous []Drive `json:"previous"`
}

type Drive struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Team           TeamRef    `json:"team"`
	Start          *DriveEdge `json:"start"`
	End            *DriveEdge `json:"end"`
	TimeElapsed    *Clock     `json:"timeElapsed"`
	Yards          Flex       `json:"yards"`
	OffensivePlays *Flex      `json:"offensivePlays"`
	Result         string     `json:"result"`
	DisplayResult  string     `json:"displayResult"`
	Plays          []PlayText `json:"plays"`
}

type DriveEdge struct {
	Period *Period `json:"period"`
	Clock  *Clock  `json:"clock"`
	Text   string  `json:"text"`
}

type TeamRef struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

type Period struct {
	Number int `json:"number"`
}

type Clock struct {
	DisplayValue string `json:"displayValue"`
}

type TypeText struct {
	Text         string `json:"text"`
	Abbreviation string `json:"abbreviation"`
}

type ScoringPlay struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Type      TypeText `json:"type"`
	Period    Period   `json:"period"`
	Clock     Clock    `json:"clock"`
	Team      TeamRef  `json:"team"`
	HomeScore Flex     `json:"homeScore"`
	AwayScore Flex     `json:"awayScore"`
}

type WinProbability struct {
	HomeWinPercentage *float64 `json:"homeWinPercentage"`
	TiePercentage     *float64 `json:"tiePercentage"`
	PlayID            string   `json:"playId"`
}

type GameInfo struct {
	Venue   *Venue   `json:"venue"`
	Weather *Weather `json:"weather"`
}

type Venue struct {
	FullName string  `json:"fullName"`
	Address  Address `json:"address"`
	Capacity *Flex   `json:"capacity"`
	Indoor   *bool   `json:"indoor"`
}

type Address struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type Weather struct {
	DisplayValue  string `json:"displayValue"`
	Temperature   *Flex  `json:"temperature"`
	ConditionID   string `json:"conditionId"`
	Gust          *Flex  `json:"gust"`
	Precipitation *Flex  `json:"precipitation"`
}

// Athlete is the player identity block shared by leaders, injuries, boxscore
// and rosters.
type Athlete struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	ShortName   string    `json:"shortName"`
	Jersey      string    `json:"jersey"`
	Headshot    *Headshot `json:"headshot"`
	Position    *Position `json:"position"`
}

type Headshot struct {
	Href string `json:"href"`
}

type Position struct {
	Abbreviation string `json:"abbreviation"`
}

// HeadshotURL returns the headshot href or "".
func (a Athlete) HeadshotURL() string {
	if a.Headshot == nil {
		return ""
	}
	return a.Headshot.Href
}

// PositionAbbr returns the position abbreviation or "".
func (a Athlete) PositionAbbr() string {
	if a.Position == nil {
		return ""
	}
	return a.Position.Abbreviation
}

type TeamLeaders struct {
	Team    TeamRef          `json:"team"`
	Leaders []LeaderCategory `json:"leaders"`
}

type LeaderCategory struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Leaders     []Leader `json:"leaders"`
}

type Leader struct {
	DisplayValue string  `json:"displayValue"`
	Value        Flex    `json:"value"`
	Athlete      Athlete `json:"athlete"`
}

type TeamInjuries struct {
	Team     TeamRef  `json:"team"`
	Injuries []Injury `json:"injuries"`
}

type Injury struct {
	Status  string         `json:"status"`
	Athlete Athlete        `json:"athlete"`
	Type    *InjuryType    `json:"type"`
	Details *InjuryDetails `json:"details"`
}

type InjuryType struct {
	Description string `json:"description"`
}

type InjuryDetails struct {
	Type       string `json:"type"`
	ReturnDate string `json:"returnDate"`
}

type Boxscore struct {
	Teams   []BoxscoreTeam    `json:"teams"`
	Players []BoxscorePlayers `json:"players"`
}

type BoxscoreTeam struct {
	Team       TeamRef `json:"team"`
	Statistics []Stat  `json:"statistics"`
}

type BoxscorePlayers struct {
	Team       TeamRef            `json:"team"`
	Statistics []BoxscoreCategory `json:"statistics"`
}

// BoxscoreCategory is one stat table (passing, rushing, ...). Each athlete's
// Stats line up with Labels.
type BoxscoreCategory struct {
	Name     string            `json:"name"`
	Labels   []string          `json:"labels"`
	Keys     []string          `json:"keys"`
	Athletes []BoxscoreAthlete `json:"athletes"`
}

type BoxscoreAthlete struct {
	Athlete Athlete  `json:"athlete"`
	Stats   []string `json:"stats"`
}

// PlayByPlay is the cdn play-by-play document.
type PlayByPlay struct {
	GamePackage struct {
		Plays []Play `json:"plays"`
	} `json:"gamepackageJSON"`
}

type Play struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Type        *TypeText `json:"type"`
	Period      Period    `json:"period"`
	Clock       Clock     `json:"clock"`
	HomeScore   Flex      `json:"homeScore"`
	AwayScore   Flex      `json:"awayScore"`
	ScoringPlay bool      `json:"scoringPlay"`
}

// Roster is the team roster document. Athletes are grouped by unit.
type Roster struct {
	Athletes []RosterGroup `json:"athletes"`
}

type RosterGroup struct {
	Position string    `json:"position"`
	Items    []Athlete `json:"items"`
}
