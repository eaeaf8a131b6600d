package catalog

import (
	"context"

	"github.com/vmunix/sonarrplus/internal/events"
	"github.com/vmunix/sonarrplus/internal/settings"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

//go:generate mockgen -destination=mocks/mock_library.go -package=mocks . LibraryAPI
//go:generate mockgen -destination=mocks/mock_discovery.go -package=mocks . DiscoveryAPI
//go:generate mockgen -destination=mocks/mock_preferences.go -package=mocks . Preferences

// LibraryAPI is the library service the catalog drives. *sonarr.Client
// implements it.
type LibraryAPI interface {
	Authenticate(ctx context.Context, baseURL, apiKey string) (*sonarr.SystemStatus, error)
	Disconnect()
	Connected() bool
	BaseURL() string

	AllSeries(ctx context.Context) ([]sonarr.Series, error)
	GetSeries(ctx context.Context, id int64) (*sonarr.Series, error)
	Lookup(ctx context.Context, term string) ([]sonarr.Series, error)
	AddSeries(ctx context.Context, req sonarr.AddSeriesRequest) (*sonarr.Series, error)
	SetSeasonMonitored(ctx context.Context, seriesID int64, seasonNumber int, monitored bool) error

	Episodes(ctx context.Context, seriesID int64, season *int) ([]sonarr.Episode, error)
	GetEpisode(ctx context.Context, id int64) (*sonarr.Episode, error)
	SetEpisodeMonitored(ctx context.Context, episodeID int64, monitored bool) error
	DeleteEpisodeFile(ctx context.Context, episodeFileID int64) error
	SearchEpisode(ctx context.Context, episodeID int64) (*sonarr.Command, error)

	Queue(ctx context.Context) ([]sonarr.QueueItem, error)
	RemoveFromQueue(ctx context.Context, id int64) error

	RootFolders(ctx context.Context) ([]sonarr.RootFolder, error)
	QualityProfiles(ctx context.Context) ([]sonarr.QualityProfile, error)
	Indexers(ctx context.Context) ([]sonarr.Indexer, error)
	DiskSpace(ctx context.Context) ([]sonarr.DiskSpace, error)
}

// DiscoveryAPI is the discovery service. *tmdb.Client implements it.
type DiscoveryAPI interface {
	Popular(ctx context.Context) ([]tmdb.TVShow, error)
	OnTheAir(ctx context.Context) ([]tmdb.TVShow, error)
	TopRated(ctx context.Context) ([]tmdb.TVShow, error)
	DiscoverByGenre(ctx context.Context, genreID int) ([]tmdb.TVShow, error)
	Search(ctx context.Context, query string) ([]tmdb.TVShow, error)
}

// Preferences persists local choices. *settings.Store implements it.
type Preferences interface {
	SaveCredentials(ctx context.Context, baseURL, apiKey string) error
	ClearCredentials(ctx context.Context) error
	SetNotifications(ctx context.Context, seriesID int64, enabled bool) error
	NotificationPrefs(ctx context.Context) (map[int64]bool, error)
	AddToWatchlist(ctx context.Context, e settings.WatchlistEntry) error
	RemoveFromWatchlist(ctx context.Context, showID int64) error
	Watchlist(ctx context.Context) ([]settings.WatchlistEntry, error)
}

// Publisher receives state change events. *events.Bus implements it.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

var (
	_ LibraryAPI   = (*sonarr.Client)(nil)
	_ DiscoveryAPI = (*tmdb.Client)(nil)
	_ Preferences  = (*settings.Store)(nil)
	_ Publisher    = (*events.Bus)(nil)
)
