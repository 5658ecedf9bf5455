package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/gameday/auth"
	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/dashclient"
	"github.com/danielhkuo/gameday/espn"
	"github.com/danielhkuo/gameday/gamefeed"
	"github.com/danielhkuo/gameday/ledger"
	"github.com/danielhkuo/gameday/middleware"
	"github.com/danielhkuo/gameday/router"
	"github.com/danielhkuo/gameday/store"
)

func main() {
	_ = godotenv.Load()
	setupLogger()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKey {
		fmt.Println(auth.GenerateAdminKey(auth.ScopeResetVotes, cfg.AdminKeySalt))
		return
	}

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchURL != "" {
		watch(ctx, cfg.WatchURL)
		return
	}

	if err := serve(ctx, cfg); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
}

// setupLogger uses readable text logs on a terminal and JSON otherwise
func setupLogger() {
	var h slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		h = slog.NewTextHandler(os.Stdout, nil)
	} else {
		h = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	// Connect to the vote store
	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	st, err := store.Open(openCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.DatabaseType, err)
	}
	defer st.Close()
	slog.Info("Database ready", "type", cfg.DatabaseType)

	votes := ledger.New(st, cfg.Event, cfg.IPHashSalt)
	client := espn.New(cfg.SummaryURL, cfg.PlayByPlayURL, cfg.RosterURL, cfg.UpstreamTimeout)
	feed := gamefeed.New(client, cfg.Event, gamefeed.Options{
		Timeout:      cfg.UpstreamTimeout,
		CacheTTL:     cfg.CacheTTL,
		FetchRosters: cfg.FetchRosters,
	})

	// Create router
	mux := router.NewRouter(votes, feed, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.CORSOrigins)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("Listening",
			"port", cfg.Port,
			"game_id", cfg.Event.GameID,
			"kickoff", cfg.Event.Kickoff,
		)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server closed")
	return nil
}

func watch(ctx context.Context, url string) {
	p := dashclient.New(url)
	slog.Info("Watching", "url", url, "votes_every", p.VotesEvery, "game_every", p.GameEvery)

	err := p.Run(ctx, func(s dashclient.State) {
		fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), s.Line())
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("watch stopped", "error", err)
	}
}
