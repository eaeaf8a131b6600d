package catalog

import (
	"context"
	"fmt"

	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
)

func episodeKey(id int64) string { return fmt.Sprintf("episode:%d", id) }

// Episodes lists the episodes of a library show, optionally one season.
// The season filter is applied again locally; results are ordered by
// season then episode and carry the show's name.
func (s *Service) Episodes(ctx context.Context, show Show, season *int) ([]Episode, error) {
	records, err := s.library.Episodes(ctx, show.ID, season)
	if err != nil {
		return nil, err
	}

	eps := make([]Episode, 0, len(records))
	for _, r := range records {
		if season != nil && r.SeasonNumber != *season {
			continue
		}
		eps = append(eps, episodeFrom(r, show.Name))
	}
	sortEpisodes(eps)

	s.state.mergeEpisodes(show.ID, season, eps)
	return eps, nil
}

// SetEpisodeMonitored toggles monitoring of one episode, rolling State
// back if the server refuses.
func (s *Service) SetEpisodeMonitored(ctx context.Context, episodeID int64, monitored bool) error {
	return s.seq.Do(ctx, episodeKey(episodeID), func(ctx context.Context, _ Token) error {
		current := !monitored
		cached, ok := s.state.episode(episodeID)
		if ok {
			current = cached.Monitored
		}

		toggle := NewToggle(current, func(v bool) { s.state.setEpisodeMonitored(episodeID, v) })
		err := toggle.Run(ctx, monitored, func(ctx context.Context) error {
			return s.library.SetEpisodeMonitored(ctx, episodeID, monitored)
		})
		if err != nil {
			s.log.Warn("episode monitor rolled back", "episode_id", episodeID, "error", err)
			s.publish(ctx, &events.EpisodeMonitorChanged{
				BaseEvent: events.NewBaseEvent(events.EventEpisodeMonitorRolledBack, events.EntityEpisode, episodeID),
				SeriesID:  cached.SeriesID,
				Monitored: toggle.Value(),
				Error:     err.Error(),
			})
			return err
		}

		s.publish(ctx, &events.EpisodeMonitorChanged{
			BaseEvent: events.NewBaseEvent(events.EventEpisodeMonitorChanged, events.EntityEpisode, episodeID),
			SeriesID:  cached.SeriesID,
			Monitored: monitored,
		})
		return nil
	})
}

// SearchEpisode asks the library to search for an episode. The returned
// command has been accepted by the server; the search itself runs later.
func (s *Service) SearchEpisode(ctx context.Context, episodeID int64) (*sonarr.Command, error) {
	var cmd *sonarr.Command
	err := s.seq.Do(ctx, episodeKey(episodeID), func(ctx context.Context, _ Token) error {
		var err error
		if cmd, err = s.library.SearchEpisode(ctx, episodeID); err != nil {
			return err
		}
		s.publish(ctx, &events.EpisodeSearchQueued{
			BaseEvent: events.NewBaseEvent(events.EventEpisodeSearchQueued, events.EntityEpisode, episodeID),
			CommandID: cmd.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// DeleteEpisodeFile removes the file of an episode from disk.
func (s *Service) DeleteEpisodeFile(ctx context.Context, episodeID int64) error {
	return s.seq.Do(ctx, episodeKey(episodeID), func(ctx context.Context, _ Token) error {
		ep, err := s.library.GetEpisode(ctx, episodeID)
		if err != nil {
			return err
		}
		if !ep.HasFile || ep.EpisodeFileID <= 0 {
			return fmt.Errorf("%w: episode %d", ErrNoEpisodeFile, episodeID)
		}
		if err := s.library.DeleteEpisodeFile(ctx, ep.EpisodeFileID); err != nil {
			return err
		}

		s.state.clearEpisodeFile(episodeID)
		s.log.Info("episode file deleted", "episode_id", episodeID, "episode_file_id", ep.EpisodeFileID)
		s.publish(ctx, &events.EpisodeFileDeleted{
			BaseEvent:     events.NewBaseEvent(events.EventEpisodeFileDeleted, events.EntityEpisode, episodeID),
			EpisodeFileID: ep.EpisodeFileID,
		})
		return nil
	})
}
