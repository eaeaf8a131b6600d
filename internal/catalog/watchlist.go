package catalog

import (
	"context"
	"slices"

	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/internal/settings"
	"github.com/vmunix/sonarrplus/pkg/titles"
)

// AddToWatchlist remembers a discovery show for later.
func (s *Service) AddToWatchlist(ctx context.Context, show Show) error {
	entry := settings.WatchlistEntry{
		ShowID:       show.ID,
		Name:         show.Name,
		Overview:     show.Overview,
		Poster:       show.Poster,
		FirstAirDate: show.FirstAirDate,
		VoteAverage:  show.VoteAverage,
	}
	if id, ok := show.TVDBID.Get(); ok {
		entry.TVDBID = &id
	}
	if err := s.prefs.AddToWatchlist(ctx, entry); err != nil {
		return err
	}
	s.publish(ctx, &events.WatchlistChanged{
		BaseEvent: events.NewBaseEvent(events.EventWatchlistChanged, events.EntitySeries, show.ID),
		Name:      show.Name,
		Added:     true,
	})
	return nil
}

// RemoveFromWatchlist forgets a watchlist show. Removing an absent show
// returns settings.ErrNotFound.
func (s *Service) RemoveFromWatchlist(ctx context.Context, showID int64) error {
	var name string
	if entries, err := s.prefs.Watchlist(ctx); err == nil {
		if i := slices.IndexFunc(entries, func(e settings.WatchlistEntry) bool { return e.ShowID == showID }); i >= 0 {
			name = entries[i].Name
		}
	}
	if err := s.prefs.RemoveFromWatchlist(ctx, showID); err != nil {
		return err
	}
	s.publish(ctx, &events.WatchlistChanged{
		BaseEvent: events.NewBaseEvent(events.EventWatchlistChanged, events.EntitySeries, showID),
		Name:      name,
	})
	return nil
}

// Watchlist returns the remembered shows, oldest first.
func (s *Service) Watchlist(ctx context.Context) ([]Show, error) {
	entries, err := s.prefs.Watchlist(ctx)
	if err != nil {
		return nil, err
	}
	shows := make([]Show, 0, len(entries))
	for _, e := range entries {
		show := Show{
			ID:           e.ShowID,
			Name:         e.Name,
			Overview:     e.Overview,
			Poster:       e.Poster,
			FirstAirDate: e.FirstAirDate,
			VoteAverage:  e.VoteAverage,
			TVDBID:       Unidentified(),
		}
		if e.TVDBID != nil {
			show.TVDBID = Identified(*e.TVDBID)
		}
		shows = append(shows, show)
	}
	return shows, nil
}

// FilterLibrary returns the shows whose names match query, best match
// first. An empty query returns shows unchanged.
func FilterLibrary(shows []Show, query string) []Show {
	if titles.Normalize(query) == "" {
		return shows
	}
	names := make([]string, len(shows))
	for i, show := range shows {
		names[i] = show.Name
	}
	ranked := titles.Rank(query, names, titles.ConfidenceMedium)
	out := make([]Show, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, shows[r.Index])
	}
	return out
}
