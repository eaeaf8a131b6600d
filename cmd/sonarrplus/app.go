package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/vmunix/sonarrplus/internal/catalog"
	"github.com/vmunix/sonarrplus/internal/config"
	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/internal/settings"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

// logOutput is where diagnostics go; tests swap it out.
var logOutput io.Writer = os.Stderr

// app is everything one command invocation needs.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *sql.DB
	store   *settings.Store
	bus     *events.Bus
	events  *events.EventLog
	catalog *catalog.Service

	traceDone chan struct{} // closed once --trace output is drained
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig honors --config, then the discovery order. A missing file
// means defaults.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// openApp loads config, opens the settings database and wires the
// catalog. Saved credentials win over the [sonarr] section.
func openApp(ctx context.Context) (*app, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := settings.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	store := settings.NewStore(db)
	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger)

	sonarrOpts := []sonarr.Option{
		sonarr.WithHTTPClient(&http.Client{Timeout: cfg.Sonarr.Timeout}),
		sonarr.WithLogger(logger),
	}
	creds, err := store.Credentials(ctx)
	switch {
	case err == nil:
		sonarrOpts = append(sonarrOpts, sonarr.WithSession(creds.BaseURL, creds.APIKey))
	case errors.Is(err, settings.ErrNotFound):
		if cfg.Sonarr.URL != "" && cfg.Sonarr.APIKey != "" {
			sonarrOpts = append(sonarrOpts, sonarr.WithSession(cfg.Sonarr.URL, cfg.Sonarr.APIKey))
		}
	default:
		_ = db.Close()
		return nil, err
	}

	tmdbOpts := []tmdb.Option{
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithRateLimit(cfg.TMDB.RateLimit, cfg.TMDB.Burst),
		tmdb.WithCacheTTL(cfg.TMDB.CacheTTL),
		tmdb.WithLogger(logger),
	}
	if cfg.TMDB.BaseURL != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}

	svc := catalog.New(
		sonarr.New(sonarrOpts...),
		tmdb.NewClient(cfg.TMDB.APIKey, tmdbOpts...),
		catalog.WithPreferences(store),
		catalog.WithPublisher(bus),
		catalog.WithLogger(logger),
	)

	a := &app{
		cfg:     cfg,
		log:     logger,
		db:      db,
		store:   store,
		bus:     bus,
		events:  eventLog,
		catalog: svc,
	}
	if traceEvents {
		a.trace(rootCmd.ErrOrStderr())
	}
	return a, nil
}

// trace prints every published event to w until the bus closes.
func (a *app) trace(w io.Writer) {
	ch := a.bus.SubscribeAll(64)
	a.traceDone = make(chan struct{})
	go func() {
		defer close(a.traceDone)
		for e := range ch {
			desc := e.EventType()
			if d, ok := e.(events.Describer); ok {
				desc = d.Describe()
			}
			fmt.Fprintf(w, "event %s: %s\n", e.EventType(), desc)
		}
	}()
}

func (a *app) Close() error {
	_ = a.bus.Close()
	if a.traceDone != nil {
		<-a.traceDone
	}
	return a.db.Close()
}

// withApp opens the app around fn.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}
