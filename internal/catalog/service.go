package catalog

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
)

// Sequencer keys for list refreshes.
const (
	keyLibrary = "library"
	keyQueue   = "queue"
)

// Service is the one entry point the front end talks to. It combines the
// discovery and library services, keeps State current and publishes an
// event for every change it makes.
type Service struct {
	library   LibraryAPI
	discovery DiscoveryAPI
	prefs     Preferences
	pub       Publisher
	seq       *Sequencer
	state     *State
	log       *slog.Logger

	railLimit int
}

// Option configures a Service.
type Option func(*Service)

// WithPreferences persists credentials, notification preferences and the
// watchlist. Without it they live in memory.
func WithPreferences(p Preferences) Option {
	return func(s *Service) { s.prefs = p }
}

// WithPublisher sets where state change events go.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.pub = p }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log.With("component", "catalog") }
}

// WithRailConcurrency bounds how many discovery rails DiscoverAll fetches
// at once.
func WithRailConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.railLimit = n
		}
	}
}

// New creates a Service over the given upstream clients.
func New(library LibraryAPI, discovery DiscoveryAPI, opts ...Option) *Service {
	s := &Service{
		library:   library,
		discovery: discovery,
		seq:       NewSequencer(),
		state:     newState(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		railLimit: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prefs == nil {
		s.prefs = newMemoryPreferences()
	}
	return s
}

// State returns the observable local state.
func (s *Service) State() *State { return s.state }

// Connected reports whether the library session is established.
func (s *Service) Connected() bool { return s.library.Connected() }

// Authenticate probes the library server and, on success, makes the
// credentials the active session and saves them.
func (s *Service) Authenticate(ctx context.Context, baseURL, apiKey string) (*sonarr.SystemStatus, error) {
	status, err := s.library.Authenticate(ctx, baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	base := s.library.BaseURL()
	s.state.reset()

	if err := s.prefs.SaveCredentials(ctx, base, apiKey); err != nil {
		return status, fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info("connected", "url", base, "version", status.Version)
	s.publish(ctx, &events.SessionConnected{
		BaseEvent: events.NewBaseEvent(events.EventSessionConnected, events.EntitySession, 0),
		BaseURL:   base,
		Version:   status.Version,
	})
	return status, nil
}

// Disconnect drops the session, the saved credentials and all local state.
func (s *Service) Disconnect(ctx context.Context) error {
	s.library.Disconnect()
	s.state.reset()
	if err := s.prefs.ClearCredentials(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.log.Info("disconnected")
	s.publish(ctx, &events.SessionDisconnected{
		BaseEvent: events.NewBaseEvent(events.EventSessionDisconnected, events.EntitySession, 0),
	})
	return nil
}

// SeriesWebURL returns the address of a series in the library web UI.
func (s *Service) SeriesWebURL(id ExternalID) (string, error) {
	base := s.library.BaseURL()
	if base == "" {
		return "", sonarr.ErrNotConfigured
	}
	if !id.IsIdentified() {
		return "", ErrUnidentified
	}
	return base + "/series/" + id.String(), nil
}

// publish hands e to the publisher. A failed publish never fails the
// operation that caused it.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("publish event failed", "type", e.EventType(), "error", err)
	}
}

// fromLibrary converts records, logging and skipping invalid ones.
func (s *Service) fromLibrary(records []sonarr.Series) []Show {
	shows := make([]Show, 0, len(records))
	for _, r := range records {
		show, err := FromLibrary(r)
		if err != nil {
			s.log.Debug("skipping library record", "error", err)
			continue
		}
		shows = append(shows, show)
	}
	return shows
}

func sortShows(shows []Show) {
	slices.SortStableFunc(shows, func(a, b Show) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

func sortEpisodes(eps []Episode) {
	slices.SortStableFunc(eps, func(a, b Episode) int {
		return cmp.Or(
			cmp.Compare(a.SeasonNumber, b.SeasonNumber),
			cmp.Compare(a.EpisodeNumber, b.EpisodeNumber),
		)
	})
}
