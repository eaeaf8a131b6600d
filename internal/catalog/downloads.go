package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
)

// Queue fetches the download queue and replaces State's queue.
func (s *Service) Queue(ctx context.Context) ([]DownloadItem, error) {
	var items []DownloadItem
	err := s.seq.Do(ctx, keyQueue, func(ctx context.Context, tok Token) error {
		records, err := s.library.Queue(ctx)
		if err != nil {
			return err
		}
		items = make([]DownloadItem, 0, len(records))
		for _, r := range records {
			items = append(items, downloadFrom(r))
		}

		if !s.seq.IsLatest(tok) {
			return nil
		}
		s.state.setQueue(items)
		s.publish(ctx, &events.QueueRefreshed{
			BaseEvent: events.NewBaseEvent(events.EventQueueRefreshed, events.EntityDownload, 0),
			Count:     len(items),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CancelDownload removes a queue item. The item leaves State at once and
// is put back where it was unless the server confirms the removal.
func (s *Service) CancelDownload(ctx context.Context, id int64) error {
	key := fmt.Sprintf("queue:%d", id)
	return s.seq.Do(ctx, key, func(ctx context.Context, _ Token) error {
		var (
			item  DownloadItem
			index = -1
		)
		toggle := NewToggle(true, func(present bool) {
			if present {
				if index >= 0 {
					s.state.restoreQueueItem(item, index)
				}
				return
			}
			if it, i, ok := s.state.removeQueueItem(id); ok {
				item, index = it, i
			}
		})

		err := toggle.Run(ctx, false, func(ctx context.Context) error {
			return s.library.RemoveFromQueue(ctx, id)
		})
		if err != nil {
			s.log.Warn("download cancel rolled back", "queue_id", id, "error", err)
			s.publish(ctx, &events.DownloadCanceled{
				BaseEvent: events.NewBaseEvent(events.EventDownloadRolledBack, events.EntityDownload, id),
				Title:     item.Title,
				Error:     err.Error(),
			})
			return err
		}

		s.publish(ctx, &events.DownloadCanceled{
			BaseEvent: events.NewBaseEvent(events.EventDownloadCanceled, events.EntityDownload, id),
			Title:     item.Title,
		})
		return nil
	})
}

// HasUsableIndexer reports whether any indexer can serve an episode search.
func (s *Service) HasUsableIndexer(ctx context.Context) (bool, error) {
	indexers, err := s.library.Indexers(ctx)
	if err != nil {
		return false, err
	}
	has := slices.ContainsFunc(indexers, sonarr.Indexer.Enabled)
	s.state.setIndexer(has)
	return has, nil
}
