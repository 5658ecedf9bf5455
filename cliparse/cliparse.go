package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/gameday/models"
)

// Defaults for Super Bowl LX.
const (
	DefaultPort            = 4000
	DefaultKickoff         = "2026-02-08T18:30:00-05:00"
	DefaultGameID          = "401772988"
	DefaultHomeTeam        = "patriots:NE"
	DefaultAwayTeam        = "seahawks:SEA"
	DefaultSummaryURL      = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/summary"
	DefaultPlayByPlayURL   = "https://cdn.espn.com/core/nfl/playbyplay"
	DefaultRosterURL       = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams/%s/roster"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultCacheTTL        = 5 * time.Second
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMongo    = "mongo"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	IPHashSalt   string
	CORSOrigins  []string

	Event models.Event

	SummaryURL      string
	PlayByPlayURL   string
	RosterURL       string
	UpstreamTimeout time.Duration
	CacheTTL        time.Duration
	FetchRosters    bool

	PrintAdminKey bool
	WatchURL      string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var cors, kickoff, home, away string
	var upstreamTimeout, cacheTTL string
	var rosters string

	fs := flag.NewFlagSet("gameday", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cors, "cors", "", "Comma separated allowed origins")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	// Event
	fs.StringVar(&kickoff, "kickoff", "", "Kickoff instant, RFC 3339")
	fs.StringVar(&cfg.Event.GameID, "game", "", "Upstream game id")
	fs.StringVar(&home, "home", "", "Home team as key:ABBR")
	fs.StringVar(&away, "away", "", "Away team as key:ABBR")

	// Upstream
	fs.StringVar(&upstreamTimeout, "upstream-timeout", "", "Upstream request timeout")
	fs.StringVar(&cacheTTL, "cache-ttl", "", "Live snapshot cache TTL (0 disables)")
	fs.StringVar(&rosters, "rosters", "", "Fetch team rosters (true/false)")

	// Modes
	fs.BoolVar(&cfg.PrintAdminKey, "print-admin-key", false, "Print the vote reset admin key and exit")
	fs.StringVar(&cfg.WatchURL, "watch", "", "Poll a running server at this URL and print updates")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	// The watch client only needs the server URL
	if cfg.WatchURL != "" {
		return cfg, nil
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}
	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}

	// The key printer needs nothing else
	if cfg.PrintAdminKey {
		return cfg, nil
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("MONGODB_URI"))
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMongo:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	cfg.CORSOrigins = splitList(firstNonEmpty(cors, os.Getenv("CORS_ORIGINS"), os.Getenv("FRONTEND_URL"), "*"))

	// Event
	kickoffAt, err := time.Parse(time.RFC3339, firstNonEmpty(kickoff, os.Getenv("KICKOFF_AT"), DefaultKickoff))
	if err != nil {
		return Config{}, fmt.Errorf("invalid kickoff: %w", err)
	}
	cfg.Event.Kickoff = kickoffAt
	cfg.Event.GameID = firstNonEmpty(cfg.Event.GameID, os.Getenv("GAME_ID"), DefaultGameID)
	if cfg.Event.Home, err = models.ParseTeamRef(firstNonEmpty(home, os.Getenv("HOME_TEAM"), DefaultHomeTeam)); err != nil {
		return Config{}, err
	}
	if cfg.Event.Away, err = models.ParseTeamRef(firstNonEmpty(away, os.Getenv("AWAY_TEAM"), DefaultAwayTeam)); err != nil {
		return Config{}, err
	}
	if err := cfg.Event.Validate(); err != nil {
		return Config{}, err
	}

	// Upstream
	cfg.SummaryURL = firstNonEmpty(os.Getenv("ESPN_SUMMARY_URL"), DefaultSummaryURL)
	cfg.PlayByPlayURL = firstNonEmpty(os.Getenv("ESPN_PBP_URL"), DefaultPlayByPlayURL)
	cfg.RosterURL = firstNonEmpty(os.Getenv("ESPN_ROSTER_URL"), DefaultRosterURL)

	if cfg.UpstreamTimeout, err = parseDuration(firstNonEmpty(upstreamTimeout, os.Getenv("UPSTREAM_TIMEOUT")), DefaultUpstreamTimeout); err != nil {
		return Config{}, fmt.Errorf("invalid upstream timeout: %w", err)
	}
	if cfg.UpstreamTimeout <= 0 {
		return Config{}, errors.New("upstream timeout must be positive")
	}
	if cfg.CacheTTL, err = parseDuration(firstNonEmpty(cacheTTL, os.Getenv("GAME_CACHE_TTL")), DefaultCacheTTL); err != nil {
		return Config{}, fmt.Errorf("invalid cache ttl: %w", err)
	}

	cfg.FetchRosters = true
	if v := firstNonEmpty(rosters, os.Getenv("FETCH_ROSTERS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid rosters flag: %w", err)
		}
		cfg.FetchRosters = b
	}

	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuration(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	return time.ParseDuration(raw)
}
