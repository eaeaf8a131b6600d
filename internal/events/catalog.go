package events

import "fmt"

// Entity types
const (
	EntitySession  = "session"
	EntityLibrary  = "library"
	EntitySeries   = "series"
	EntityEpisode  = "episode"
	EntityDownload = "download"
)

// Event type constants
const (
	EventSessionConnected    = "session.connected"
	EventSessionDisconnected = "session.disconnected"

	EventLibraryRefreshed = "library.refreshed"
	EventQueueRefreshed   = "queue.refreshed"

	EventSeriesAdded = "series.added"

	EventSeasonMonitorChanged    = "season.monitor.changed"
	EventSeasonMonitorRolledBack = "season.monitor.rolledback"

	EventEpisodeMonitorChanged    = "episode.monitor.changed"
	EventEpisodeMonitorRolledBack = "episode.monitor.rolledback"

	EventEpisodeSearchQueued = "episode.search.queued"
	EventEpisodeFileDeleted  = "episode.file.deleted"

	EventDownloadCanceled   = "download.canceled"
	EventDownloadRolledBack = "download.cancel.rolledback"

	EventNotificationsChanged = "notifications.changed"
	EventWatchlistChanged     = "watchlist.changed"
)

// SessionConnected is emitted after a successful authenticate.
type SessionConnected struct {
	BaseEvent
	BaseURL string `json:"base_url"`
	Version string `json:"version,omitempty"`
}

func (e *SessionConnected) Describe() string {
	return fmt.Sprintf("connected to %s (sonarr %s)", e.BaseURL, e.Version)
}

// SessionDisconnected is emitted when credentials are dropped.
type SessionDisconnected struct {
	BaseEvent
}

func (e *SessionDisconnected) Describe() string { return "disconnected" }

// LibraryRefreshed is emitted when the library list is replaced.
type LibraryRefreshed struct {
	BaseEvent
	Count int `json:"count"`
}

func (e *LibraryRefreshed) Describe() string {
	return fmt.Sprintf("library refreshed: %d series", e.Count)
}

// QueueRefreshed is emitted when the download queue is replaced.
type QueueRefreshed struct {
	BaseEvent
	Count int `json:"count"`
}

func (e *QueueRefreshed) Describe() string {
	return fmt.Sprintf("queue refreshed: %d items", e.Count)
}

// SeriesAdded is emitted when a series was created in the library.
type SeriesAdded struct {
	BaseEvent
	TVDBID        int64  `json:"tvdb_id"`
	Title         string `json:"title"`
	Path          string `json:"path"`
	SearchStarted bool   `json:"search_started"`
}

func (e *SeriesAdded) Describe() string {
	return fmt.Sprintf("added %q at %s", e.Title, e.Path)
}

// SeasonMonitorChanged is emitted for a committed season toggle, and with
// EventSeasonMonitorRolledBack when the server refused it.
type SeasonMonitorChanged struct {
	BaseEvent
	SeasonNumber int    `json:"season_number"`
	Monitored    bool   `json:"monitored"`
	Error        string `json:"error,omitempty"`
}

func (e *SeasonMonitorChanged) Describe() string {
	if e.Type == EventSeasonMonitorRolledBack {
		return fmt.Sprintf("series %d season %d: monitor change rolled back: %s", e.ID, e.SeasonNumber, e.Error)
	}
	return fmt.Sprintf("series %d season %d: monitored=%t", e.ID, e.SeasonNumber, e.Monitored)
}

// EpisodeMonitorChanged is the episode-level counterpart of SeasonMonitorChanged.
type EpisodeMonitorChanged struct {
	BaseEvent
	SeriesID  int64  `json:"series_id,omitempty"`
	Monitored bool   `json:"monitored"`
	Error     string `json:"error,omitempty"`
}

func (e *EpisodeMonitorChanged) Describe() string {
	if e.Type == EventEpisodeMonitorRolledBack {
		return fmt.Sprintf("episode %d: monitor change rolled back: %s", e.ID, e.Error)
	}
	return fmt.Sprintf("episode %d: monitored=%t", e.ID, e.Monitored)
}

// EpisodeSearchQueued is emitted when the server accepted a search command.
type EpisodeSearchQueued struct {
	BaseEvent
	CommandID int64 `json:"command_id"`
}

func (e *EpisodeSearchQueued) Describe() string {
	return fmt.Sprintf("episode %d: search queued (command %d)", e.ID, e.CommandID)
}

// EpisodeFileDeleted is emitted after an episode file was removed.
type EpisodeFileDeleted struct {
	BaseEvent
	EpisodeFileID int64 `json:"episode_file_id"`
}

func (e *EpisodeFileDeleted) Describe() string {
	return fmt.Sprintf("episode %d: file %d deleted", e.ID, e.EpisodeFileID)
}

// DownloadCanceled is emitted when a queue item was removed, and with
// EventDownloadRolledBack when the removal failed and the item was restored.
type DownloadCanceled struct {
	BaseEvent
	Title string `json:"title"`
	Error string `json:"error,omitempty"`
}

func (e *DownloadCanceled) Describe() string {
	if e.Type == EventDownloadRolledBack {
		return fmt.Sprintf("cancel of %q rolled back: %s", e.Title, e.Error)
	}
	return fmt.Sprintf("canceled %q", e.Title)
}

// NotificationsChanged is emitted when the reminder preference of a series changes.
type NotificationsChanged struct {
	BaseEvent
	Enabled bool `json:"enabled"`
}

func (e *NotificationsChanged) Describe() string {
	return fmt.Sprintf("series %d: notifications=%t", e.ID, e.Enabled)
}

// WatchlistChanged is emitted when a show enters or leaves the watchlist.
type WatchlistChanged struct {
	BaseEvent
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

func (e *WatchlistChanged) Describe() string {
	if e.Added {
		return fmt.Sprintf("watchlist: added %q", e.Name)
	}
	return fmt.Sprintf("watchlist: removed %q", e.Name)
}
