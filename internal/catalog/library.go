package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/sonarrplus/internal/events"
)

// Library fetches the library, merges notification preferences and
// replaces State's shows. Shows are sorted by name.
func (s *Service) Library(ctx context.Context) ([]Show, error) {
	var shows []Show
	err := s.seq.Do(ctx, keyLibrary, func(ctx context.Context, tok Token) error {
		records, err := s.library.AllSeries(ctx)
		if err != nil {
			return err
		}
		prefs, err := s.prefs.NotificationPrefs(ctx)
		if err != nil {
			return fmt.Errorf("notification prefs: %w", err)
		}

		shows = s.fromLibrary(records)
		for i := range shows {
			shows[i].NotificationsEnabled = prefs[shows[i].ID]
		}
		sortShows(shows)

		if !s.seq.IsLatest(tok) {
			s.log.Debug("stale library refresh dropped")
			return nil
		}
		s.state.setShows(shows)
		s.publish(ctx, &events.LibraryRefreshed{
			BaseEvent: events.NewBaseEvent(events.EventLibraryRefreshed, events.EntityLibrary, 0),
			Count:     len(shows),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// Show fetches one library series.
func (s *Service) Show(ctx context.Context, id int64) (*Show, error) {
	record, err := s.library.GetSeries(ctx, id)
	if err != nil {
		return nil, err
	}
	show, err := FromLibrary(*record)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.NotificationPrefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("notification prefs: %w", err)
	}
	show.NotificationsEnabled = prefs[show.ID]
	s.state.upsertShow(show)
	return &show, nil
}

// SearchLibrary runs a library lookup. Results without a TVDB id cannot
// be added and are dropped.
func (s *Service) SearchLibrary(ctx context.Context, query string) ([]Show, error) {
	if strings.TrimSpace(query) == "" {
		return []Show{}, nil
	}
	records, err := s.library.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	shows := s.fromLibrary(records)
	out := shows[:0]
	for _, show := range shows {
		if show.TVDBID.IsIdentified() {
			out = append(out, show)
		}
	}
	return out, nil
}

// ResolveLibraryIdentifier looks a title up in the library service and
// returns the TVDB id of the first result, or Unidentified.
func (s *Service) ResolveLibraryIdentifier(ctx context.Context, title string) (ExternalID, error) {
	records, err := s.library.Lookup(ctx, title)
	if err != nil {
		return Unidentified(), err
	}
	if len(records) == 0 {
		return Unidentified(), nil
	}
	first := records[0]
	return externalID(first.TVDBID, first.TVDBIDSnake), nil
}

// RootFolders lists the library roots. The first one becomes the default.
func (s *Service) RootFolders(ctx context.Context) ([]string, error) {
	folders, err := s.library.RootFolders(ctx)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(folders))
	for _, f := range folders {
		if f.Path != "" {
			paths = append(paths, f.Path)
		}
	}
	if len(paths) > 0 {
		s.state.setRootFolder(paths[0])
	}
	return paths, nil
}

// DefaultRootFolder returns the cached default root, fetching it if needed.
func (s *Service) DefaultRootFolder(ctx context.Context) (string, error) {
	if root := s.state.RootFolder(); root != "" {
		return root, nil
	}
	paths, err := s.RootFolders(ctx)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", ErrNoRootFolder
	}
	return paths[0], nil
}

// QualityProfiles lists the library's quality profiles.
func (s *Service) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	profiles, err := s.library.QualityProfiles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]QualityProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, QualityProfile{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

// AddToLibrary creates show in the library. A missing TVDB id is resolved
// by title, a missing root folder falls back to the default and a
// profileID of zero picks the first quality profile.
func (s *Service) AddToLibrary(ctx context.Context, show Show, profileID int, startSearch bool) (*Show, error) {
	if !show.TVDBID.IsIdentified() {
		id, err := s.ResolveLibraryIdentifier(ctx, show.Name)
		if err != nil {
			return nil, fmt.Errorf("resolve tvdb id: %w", err)
		}
		if !id.IsIdentified() {
			return nil, fmt.Errorf("%w: %q", ErrUnidentified, show.Name)
		}
		show.TVDBID = id
	}

	root := show.RootFolderPath
	if root == "" {
		var err error
		if root, err = s.DefaultRootFolder(ctx); err != nil {
			return nil, err
		}
	}

	if profileID <= 0 {
		profiles, err := s.library.QualityProfiles(ctx)
		if err != nil {
			return nil, err
		}
		if len(profiles) == 0 {
			return nil, ErrNoQualityProfile
		}
		profileID = profiles[0].ID
	}

	req, err := show.ToLibraryModel(root, profileID, startSearch)
	if err != nil {
		return nil, err
	}
	created, err := s.library.AddSeries(ctx, req)
	if err != nil {
		return nil, err
	}

	added, err := FromLibrary(*created)
	if err != nil {
		return nil, fmt.Errorf("created series: %w", err)
	}
	s.state.upsertShow(added)

	s.log.Info("series added", "series_id", added.ID, "tvdb_id", req.TVDBID, "path", req.Path)
	s.publish(ctx, &events.SeriesAdded{
		BaseEvent:     events.NewBaseEvent(events.EventSeriesAdded, events.EntitySeries, added.ID),
		TVDBID:        req.TVDBID,
		Title:         req.Title,
		Path:          req.Path,
		SearchStarted: startSearch,
	})
	return &added, nil
}

// SetSeasonMonitored toggles monitoring of one season. State is updated
// immediately and restored if the server refuses the change. Toggles for
// the same series run one at a time.
func (s *Service) SetSeasonMonitored(ctx context.Context, seriesID int64, season int, monitored bool) error {
	key := fmt.Sprintf("series:%d", seriesID)
	return s.seq.Do(ctx, key, func(ctx context.Context, _ Token) error {
		current := !monitored
		if show, ok := s.state.Show(seriesID); ok {
			if se, ok := show.Season(season); ok {
				current = se.Monitored
			}
		}

		toggle := NewToggle(current, func(v bool) { s.state.setSeasonMonitored(seriesID, season, v) })
		err := toggle.Run(ctx, monitored, func(ctx context.Context) error {
			return s.library.SetSeasonMonitored(ctx, seriesID, season, monitored)
		})
		if err != nil {
			s.log.Warn("season monitor rolled back", "series_id", seriesID, "season", season, "error", err)
			s.publish(ctx, &events.SeasonMonitorChanged{
				BaseEvent:    events.NewBaseEvent(events.EventSeasonMonitorRolledBack, events.EntitySeries, seriesID),
				SeasonNumber: season,
				Monitored:    toggle.Value(),
				Error:        err.Error(),
			})
			return err
		}

		s.publish(ctx, &events.SeasonMonitorChanged{
			BaseEvent:    events.NewBaseEvent(events.EventSeasonMonitorChanged, events.EntitySeries, seriesID),
			SeasonNumber: season,
			Monitored:    monitored,
		})
		return nil
	})
}
