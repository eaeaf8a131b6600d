package catalog

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/vmunix/sonarrplus/internal/settings"
)

// memoryPreferences keeps preferences for the life of the process. It is
// used when the service is built without a persistent store.
type memoryPreferences struct {
	mu            sync.Mutex
	notifications map[int64]bool
	watchlist     []settings.WatchlistEntry
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{notifications: make(map[int64]bool)}
}

func (m *memoryPreferences) SaveCredentials(context.Context, string, string) error { return nil }

func (m *memoryPreferences) ClearCredentials(context.Context) error { return nil }

func (m *memoryPreferences) SetNotifications(_ context.Context, seriesID int64, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if enabled {
		m.notifications[seriesID] = true
	} else {
		delete(m.notifications, seriesID)
	}
	return nil
}

func (m *memoryPreferences) NotificationPrefs(context.Context) (map[int64]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.notifications), nil
}

func (m *memoryPreferences) AddToWatchlist(_ context.Context, e settings.WatchlistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(e.ShowID); i >= 0 {
		e.AddedAt = m.watchlist[i].AddedAt
		m.watchlist[i] = e
		return nil
	}
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now().UTC()
	}
	m.watchlist = append(m.watchlist, e)
	return nil
}

func (m *memoryPreferences) RemoveFromWatchlist(_ context.Context, showID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(showID)
	if i < 0 {
		return settings.ErrNotFound
	}
	m.watchlist = slices.Delete(m.watchlist, i, i+1)
	return nil
}

func (m *memoryPreferences) Watchlist(context.Context) ([]settings.WatchlistEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.watchlist)
	if out == nil {
		out = []settings.WatchlistEntry{}
	}
	return out, nil
}

func (m *memoryPreferences) index(showID int64) int {
	return slices.IndexFunc(m.watchlist, func(e settings.WatchlistEntry) bool { return e.ShowID == showID })
}
