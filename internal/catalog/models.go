// Package catalog is the single entry point for browsing discovery shows
// and managing the library: it converts both upstream shapes into one Show
// model, keeps observable local state and sequences mutations per resource.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

// ExternalID is a TVDB identifier that is either known or explicitly
// unidentified. Only positive values are identified.
type ExternalID struct {
	value int64
	ok    bool
}

// Identified returns a known id. Non-positive values yield Unidentified.
func Identified(v int64) ExternalID {
	if v <= 0 {
		return ExternalID{}
	}
	return ExternalID{value: v, ok: true}
}

// Unidentified returns the unknown id.
func Unidentified() ExternalID { return ExternalID{} }

// Get returns the id and whether it is known.
func (e ExternalID) Get() (int64, bool) { return e.value, e.ok }

// IsIdentified reports whether the id is known.
func (e ExternalID) IsIdentified() bool { return e.ok }

func (e ExternalID) String() string {
	if !e.ok {
		return "unresolved"
	}
	return strconv.FormatInt(e.value, 10)
}

// MarshalJSON encodes an unidentified id as null.
func (e ExternalID) MarshalJSON() ([]byte, error) {
	if !e.ok {
		return []byte("null"), nil
	}
	return json.Marshal(e.value)
}

// UnmarshalJSON accepts a number or null.
func (e *ExternalID) UnmarshalJSON(data []byte) error {
	var v *int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("external id: %w", err)
	}
	if v == nil {
		*e = Unidentified()
		return nil
	}
	*e = Identified(*v)
	return nil
}

// Show is the canonical show entity, from either discovery or the library.
type Show struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Overview             string     `json:"overview,omitempty"`
	Poster               string     `json:"poster,omitempty"` // TMDB-relative path or absolute URL
	FirstAirDate         string     `json:"firstAirDate,omitempty"`
	VoteAverage          *float64   `json:"voteAverage,omitempty"`
	Monitored            *bool      `json:"monitored,omitempty"` // nil when not in the library
	Seasons              []Season   `json:"seasons,omitempty"`
	TVDBID               ExternalID `json:"tvdbId"`
	RootFolderPath       string     `json:"rootFolderPath,omitempty"`
	NotificationsEnabled bool       `json:"notificationsEnabled"`

	Status           string   `json:"status,omitempty"`
	Network          string   `json:"network,omitempty"`
	Year             int      `json:"year,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Path             string   `json:"path,omitempty"`
	QualityProfileID int      `json:"qualityProfileId,omitempty"`
}

// PosterURL expands Poster into a fetchable URL.
func (s Show) PosterURL(size string) string {
	return tmdb.PosterURL(s.Poster, size)
}

// InLibrary reports whether the show came from the library service.
func (s Show) InLibrary() bool { return s.Monitored != nil }

// Season returns the season with the given number.
func (s Show) Season(number int) (Season, bool) {
	for _, season := range s.Seasons {
		if season.Number == number {
			return season, true
		}
	}
	return Season{}, false
}

// Season is one season of a library show.
type Season struct {
	Number     int               `json:"seasonNumber"`
	Monitored  bool              `json:"monitored"`
	Statistics *SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics summarizes the files on disk for a season.
type SeasonStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Episode is one episode of a library show.
type Episode struct {
	ID            int64     `json:"id"`
	SeriesID      int64     `json:"seriesId"`
	SeasonNumber  int       `json:"seasonNumber"`
	EpisodeNumber int       `json:"episodeNumber"`
	Title         string    `json:"title"`
	AirDate       string    `json:"airDate,omitempty"`
	AirDateUTC    time.Time `json:"airDateUtc,omitempty"`
	Overview      string    `json:"overview,omitempty"`
	Monitored     bool      `json:"monitored"`
	HasFile       bool      `json:"hasFile"`
	EpisodeFileID int64     `json:"episodeFileId,omitempty"`
	ShowTitle     string    `json:"showTitle"`
}

// Code returns the "S01E02" form of the episode number.
func (e Episode) Code() string {
	return fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber)
}

// AirsAt returns the episode's air instant. AirDateUTC wins; a bare
// AirDate is read as midnight UTC. ok is false when neither is set.
func (e Episode) AirsAt() (time.Time, bool) {
	if !e.AirDateUTC.IsZero() {
		return e.AirDateUTC, true
	}
	if e.AirDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", e.AirDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Quality is the quality of a queued release.
type Quality struct {
	Name       string `json:"name"`
	Resolution int    `json:"resolution"`
}

// DownloadItem is one entry of the download queue.
type DownloadItem struct {
	ID                  int64     `json:"id"`
	SeriesID            int64     `json:"seriesId,omitempty"`
	EpisodeID           int64     `json:"episodeId,omitempty"`
	Title               string    `json:"title"`
	Size                float64   `json:"size"`
	SizeLeft            float64   `json:"sizeLeft"`
	Status              string    `json:"status"`
	TimeLeft            string    `json:"timeLeft,omitempty"`
	Quality             Quality   `json:"quality"`
	EstimatedCompletion time.Time `json:"estimatedCompletion,omitempty"`
}

// Progress returns the downloaded fraction in [0, 1].
func (d DownloadItem) Progress() float64 {
	if d.Size <= 0 {
		return 0
	}
	p := (d.Size - d.SizeLeft) / d.Size
	return min(max(p, 0), 1)
}

// QualityProfile is a named quality ruleset of the library.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category selects a discovery rail.
type Category string

const (
	CategoryTrending Category = "trending" // served by on_the_air
	CategoryPopular  Category = "popular"
	CategoryTopRated Category = "top-rated"
)

const genrePrefix = "genre:"

// GenreCategory returns the rail for a TMDB genre id.
func GenreCategory(id int) Category {
	return Category(genrePrefix + strconv.Itoa(id))
}

// GenreID returns the genre id of a genre rail.
func (c Category) GenreID() (int, bool) {
	rest, ok := strings.CutPrefix(string(c), genrePrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Label is the display name of the rail.
func (c Category) Label() string {
	switch c {
	case CategoryTrending:
		return "Trending"
	case CategoryPopular:
		return "Popular"
	case CategoryTopRated:
		return "Top Rated"
	}
	if id, ok := c.GenreID(); ok {
		if g, ok := tmdb.GenreByID(id); ok {
			return g.Name
		}
		return "Genre " + strconv.Itoa(id)
	}
	return string(c)
}

// Categories returns every rail: the three lists, then each genre.
func Categories() []Category {
	cats := []Category{CategoryTrending, CategoryPopular, CategoryTopRated}
	for _, g := range tmdb.TVGenres {
		cats = append(cats, GenreCategory(g.ID))
	}
	return cats
}

// ParseCategory accepts "trending", "popular", "top-rated", a genre id, a
// "genre:<id>" value or a genre name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	switch c := Category(strings.ToLower(s)); c {
	case CategoryTrending, CategoryPopular, CategoryTopRated:
		return c, nil
	}
	if c := Category(s); strings.HasPrefix(s, genrePrefix) {
		if _, ok := c.GenreID(); ok {
			return c, nil
		}
	}
	if id, err := strconv.Atoi(s); err == nil && id > 0 {
		return GenreCategory(id), nil
	}
	for _, g := range tmdb.TVGenres {
		if strings.EqualFold(g.Name, s) {
			return GenreCategory(g.ID), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Stats summarizes the library and its disks. Sizes are GiB.
type Stats struct {
	Series        int     `json:"series"`
	Monitored     int     `json:"monitored"`
	Ended         int     `json:"ended"`
	EpisodeFiles  int     `json:"episodeFiles"`
	SizeOnDiskGiB float64 `json:"sizeOnDiskGiB"`
	DiskTotalGiB  float64 `json:"diskTotalGiB"`
	DiskFreeGiB   float64 `json:"diskFreeGiB"`
	DiskUsedGiB   float64 `json:"diskUsedGiB"`
	DiskCount     int     `json:"diskCount"`
}

// Reminder is an upcoming episode of a show with notifications enabled.
type Reminder struct {
	ShowID    int64     `json:"showId"`
	ShowTitle string    `json:"showTitle"`
	Episode   Episode   `json:"episode"`
	AirsAt    time.Time `json:"airsAt"`
}
