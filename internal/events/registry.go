package events

import (
	"encoding/json"
	"fmt"
)

// EventFactory creates a new zero-value event of a specific type.
type EventFactory func() Event

// Registry maps event types to their factories for deserialization.
type Registry struct {
	factories map[string]EventFactory
}

// NewRegistry creates a new event registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]EventFactory),
	}
}

// Register adds an event type to the registry.
func (r *Registry) Register(eventType string, factory EventFactory) {
	r.factories[eventType] = factory
}

// Unmarshal deserializes a raw event into its concrete type.
func (r *Registry) Unmarshal(raw RawEvent) (Event, error) {
	factory, ok := r.factories[raw.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", raw.EventType)
	}

	event := factory()
	if err := json.Unmarshal([]byte(raw.Payload), event); err != nil {
		return nil, fmt.Errorf("unmarshal event payload: %w", err)
	}

	return event, nil
}

// DefaultRegistry returns a registry with every catalog event type registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(EventSessionConnected, func() Event { return &SessionConnected{} })
	r.Register(EventSessionDisconnected, func() Event { return &SessionDisconnected{} })
	r.Register(EventLibraryRefreshed, func() Event { return &LibraryRefreshed{} })
	r.Register(EventQueueRefreshed, func() Event { return &QueueRefreshed{} })
	r.Register(EventSeriesAdded, func() Event { return &SeriesAdded{} })

	// Toggles share one payload type between commit and rollback.
	for _, t := range []string{EventSeasonMonitorChanged, EventSeasonMonitorRolledBack} {
		r.Register(t, func() Event { return &SeasonMonitorChanged{} })
	}
	for _, t := range []string{EventEpisodeMonitorChanged, EventEpisodeMonitorRolledBack} {
		r.Register(t, func() Event { return &EpisodeMonitorChanged{} })
	}
	for _, t := range []string{EventDownloadCanceled, EventDownloadRolledBack} {
		r.Register(t, func() Event { return &DownloadCanceled{} })
	}

	r.Register(EventEpisodeSearchQueued, func() Event { return &EpisodeSearchQueued{} })
	r.Register(EventEpisodeFileDeleted, func() Event { return &EpisodeFileDeleted{} })
	r.Register(EventNotificationsChanged, func() Event { return &NotificationsChanged{} })
	r.Register(EventWatchlistChanged, func() Event { return &WatchlistChanged{} })

	return r
}

// Describe decodes raw and summarizes it. Unknown or undecodable events
// fall back to their type name.
func (r *Registry) Describe(raw RawEvent) string {
	e, err := r.Unmarshal(raw)
	if err != nil {
		return raw.EventType
	}
	if d, ok := e.(Describer); ok {
		return d.Describe()
	}
	return raw.EventType
}
