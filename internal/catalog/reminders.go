package catalog

import (
	"cmp"
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/sonarrplus/internal/events"
)

// DefaultReminderWindow is how far ahead Upcoming looks by default.
const DefaultReminderWindow = 24 * time.Hour

// Upcoming returns the episodes of notification-enabled shows that air
// after now and no later than now+window, soonest first.
func (s *Service) Upcoming(ctx context.Context, now time.Time, window time.Duration) ([]Reminder, error) {
	if window <= 0 {
		window = DefaultReminderWindow
	}

	shows := s.state.Shows()
	if len(shows) == 0 {
		var err error
		if shows, err = s.Library(ctx); err != nil {
			return nil, err
		}
	}

	var watched []Show
	for _, show := range shows {
		if show.NotificationsEnabled {
			watched = append(watched, show)
		}
	}

	perShow := make([][]Reminder, len(watched))
	until := now.Add(window)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, show := range watched {
		g.Go(func() error {
			eps, err := s.Episodes(gctx, show, nil)
			if err != nil {
				return err
			}
			for _, ep := range eps {
				at, ok := ep.AirsAt()
				if !ok || !at.After(now) || at.After(until) {
					continue
				}
				perShow[i] = append(perShow[i], Reminder{
					ShowID:    show.ID,
					ShowTitle: show.Name,
					Episode:   ep,
					AirsAt:    at,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reminders := slices.Concat(perShow...)
	if reminders == nil {
		reminders = []Reminder{}
	}
	slices.SortStableFunc(reminders, func(a, b Reminder) int {
		return cmp.Or(a.AirsAt.Compare(b.AirsAt), cmp.Compare(a.ShowTitle, b.ShowTitle))
	})
	return reminders, nil
}

// SetNotifications stores the reminder preference of a library series.
func (s *Service) SetNotifications(ctx context.Context, seriesID int64, enabled bool) error {
	if err := s.prefs.SetNotifications(ctx, seriesID, enabled); err != nil {
		return err
	}
	s.state.setNotifications(seriesID, enabled)
	s.publish(ctx, &events.NotificationsChanged{
		BaseEvent: events.NewBaseEvent(events.EventNotificationsChanged, events.EntitySeries, seriesID),
		Enabled:   enabled,
	})
	return nil
}
