// Package sonarr provides a client for the Sonarr v3 API.
package sonarr

import (
	"time"

	"github.com/vmunix/sonarrplus/pkg/jsonx"
)

// SystemStatus is the response of the status probe.
type SystemStatus struct {
	AppName      string `json:"appName"`
	InstanceName string `json:"instanceName"`
	Version      string `json:"version"`
	OSName       string `json:"osName"`
	Branch       string `json:"branch"`
}

// Series is a series record in Sonarr's library shape. Identifier and
// title fields are lenient so the caller can apply its own fallback rules.
type Series struct {
	ID               jsonx.Int    `json:"id"`
	TVDBID           jsonx.Int    `json:"tvdbId"`
	TVDBIDSnake      jsonx.Int    `json:"tvdb_id"`
	Title            jsonx.String `json:"title"`
	Name             jsonx.String `json:"name"`
	SortTitle        string       `json:"sortTitle,omitempty"`
	CleanTitle       string       `json:"cleanTitle,omitempty"`
	Status           string       `json:"status,omitempty"`
	Ended            bool         `json:"ended,omitempty"`
	Overview         string       `json:"overview,omitempty"`
	Network          string       `json:"network,omitempty"`
	AirTime          string       `json:"airTime,omitempty"`
	Year             int          `json:"year,omitempty"`
	Runtime          int          `json:"runtime,omitempty"`
	FirstAired       string       `json:"firstAired,omitempty"`
	NextAiring       string       `json:"nextAiring,omitempty"`
	PreviousAiring   string       `json:"previousAiring,omitempty"`
	Monitored        *bool        `json:"monitored,omitempty"`
	Genres           []string     `json:"genres,omitempty"`
	Ratings          *Ratings     `json:"ratings,omitempty"`
	Seasons          []Season     `json:"seasons,omitempty"`
	Images           []Image      `json:"images,omitempty"`
	Path             string       `json:"path,omitempty"`
	RootFolderPath   string       `json:"rootFolderPath,omitempty"`
	QualityProfileID int          `json:"qualityProfileId,omitempty"`
	RemotePoster     string       `json:"remotePoster,omitempty"` // lookup results only
}

// Ratings is Sonarr's rating object.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// Season is a season entry of a series.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics summarizes files on disk for a season.
type SeasonStatistics struct {
	EpisodeFileCount  int      `json:"episodeFileCount"`
	EpisodeCount      int      `json:"episodeCount"`
	TotalEpisodeCount int      `json:"totalEpisodeCount"`
	SizeOnDisk        int64    `json:"sizeOnDisk"`
	ReleaseGroups     []string `json:"releaseGroups,omitempty"`
	PercentOfEpisodes float64  `json:"percentOfEpisodes"`
}

// Image is an artwork reference. CoverType is "poster", "banner", "fanart"...
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// Episode is an episode record.
type Episode struct {
	ID            int64     `json:"id"`
	SeriesID      int64     `json:"seriesId"`
	EpisodeFileID int64     `json:"episodeFileId"`
	SeasonNumber  int       `json:"seasonNumber"`
	EpisodeNumber int       `json:"episodeNumber"`
	Title         string    `json:"title"`
	AirDate       string    `json:"airDate,omitempty"`    // "2008-01-20"
	AirDateUTC    time.Time `json:"airDateUtc,omitempty"` // RFC3339
	Overview      string    `json:"overview,omitempty"`
	Monitored     bool      `json:"monitored"`
	HasFile       bool      `json:"hasFile"`
}

// RootFolder is a configured library root.
type RootFolder struct {
	ID        int64  `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace"`
}

// QualityProfile is a named quality ruleset.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AddOptions carries the one flag the client sets when adding a series.
type AddOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

// AddSeriesRequest is the body of POST /series.
type AddSeriesRequest struct {
	Title            string      `json:"title"`
	QualityProfileID int         `json:"qualityProfileId"`
	Monitored        bool        `json:"monitored"`
	Path             string      `json:"path"`
	RootFolderPath   string      `json:"rootFolderPath"`
	TVDBID           int64       `json:"tvdbId"`
	SeasonFolder     bool        `json:"seasonFolder"`
	AddOptions       *AddOptions `json:"addOptions,omitempty"`
}

// QueueItem is one record of the download queue.
type QueueItem struct {
	ID                      int64        `json:"id"`
	SeriesID                int64        `json:"seriesId,omitempty"`
	EpisodeID               int64        `json:"episodeId,omitempty"`
	Title                   string       `json:"title"`
	Size                    float64      `json:"size"`
	SizeLeft                float64      `json:"sizeleft"`
	Status                  string       `json:"status"`
	TimeLeft                string       `json:"timeleft,omitempty"`
	EstimatedCompletionTime string       `json:"estimatedCompletionTime,omitempty"`
	Quality                 QueueQuality `json:"quality"`
	Protocol                string       `json:"protocol,omitempty"`
	DownloadClient          string       `json:"downloadClient,omitempty"`
}

// QueueQuality is the nested quality descriptor of a queue record.
type QueueQuality struct {
	Quality struct {
		Name       string `json:"name"`
		Resolution int    `json:"resolution"`
	} `json:"quality"`
}

// queuePage is the paged envelope Sonarr wraps queue records in.
type queuePage struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// Indexer is a configured search indexer.
type Indexer struct {
	ID                      int64  `json:"id"`
	Name                    string `json:"name"`
	Protocol                string `json:"protocol"`
	EnableRSS               bool   `json:"enableRss"`
	EnableAutomaticSearch   bool   `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool   `json:"enableInteractiveSearch"`
}

// Enabled reports whether the indexer can serve an episode search.
func (i Indexer) Enabled() bool {
	return i.EnableAutomaticSearch || i.EnableInteractiveSearch
}

// DiskSpace describes one disk visible to Sonarr.
type DiskSpace struct {
	Path       string  `json:"path"`
	Label      string  `json:"label"`
	FreeSpace  float64 `json:"freeSpace"`
	TotalSpace float64 `json:"totalSpace"`
}

// UsedSpace returns TotalSpace - FreeSpace.
func (d DiskSpace) UsedSpace() float64 {
	return d.TotalSpace - d.FreeSpace
}

// Command is a server-side command. A returned command has been accepted
// and queued; it has not necessarily run.
type Command struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"` // "queued", "started", "completed", "failed"
	Queued     time.Time `json:"queued,omitempty"`
	Message    string    `json:"message,omitempty"`
	EpisodeIDs []int64   `json:"episodeIds,omitempty"`
}

type commandRequest struct {
	Name       string  `json:"name"`
	EpisodeIDs []int64 `json:"episodeIds,omitempty"`
}

type episodeMonitorRequest struct {
	EpisodeIDs []int64 `json:"episodeIds"`
	Monitored  bool    `json:"monitored"`
}
