package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/sonarrplus/pkg/jsonx"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

// FromDiscovery converts a discovery result.
//
// The id is the first of id, tvdb_id, tvdbId that decoded as an integer;
// the name is name, then title. A record missing either is rejected with
// ErrInvalidRecord.
func FromDiscovery(s tmdb.TVShow) (Show, error) {
	id, ok := firstInt(s.ID, s.TVDBIDSnake, s.TVDBID)
	if !ok {
		return Show{}, fmt.Errorf("%w: no identifier", ErrInvalidRecord)
	}
	name, ok := firstString(s.Name, s.Title)
	if !ok {
		return Show{}, fmt.Errorf("%w: show %d has no name", ErrInvalidRecord, id)
	}

	return Show{
		ID:           id,
		Name:         name,
		Overview:     s.Overview,
		Poster:       pickPoster(s.PosterPath, tmdbArtwork(s.Images)),
		FirstAirDate: s.FirstAirDate,
		VoteAverage:  pickVote(s.VoteAverage, tmdbRating(s.Ratings)),
		TVDBID:       externalID(s.TVDBIDSnake, s.TVDBID),
		Year:         s.Year(),
	}, nil
}

// FromLibrary converts a library record or a library lookup result. The
// identifier and name rules match FromDiscovery. Records carrying a
// library id are marked as in the library.
func FromLibrary(s sonarr.Series) (Show, error) {
	id, ok := firstInt(s.ID, s.TVDBIDSnake, s.TVDBID)
	if !ok {
		return Show{}, fmt.Errorf("%w: no identifier", ErrInvalidRecord)
	}
	name, ok := firstString(s.Name, s.Title)
	if !ok {
		return Show{}, fmt.Errorf("%w: series %d has no name", ErrInvalidRecord, id)
	}

	show := Show{
		ID:               id,
		Name:             name,
		Overview:         s.Overview,
		Poster:           pickPoster(s.RemotePoster, sonarrArtwork(s.Images)),
		FirstAirDate:     dateOnly(s.FirstAired),
		VoteAverage:      pickVote(nil, sonarrRating(s.Ratings)),
		TVDBID:           externalID(s.TVDBID, s.TVDBIDSnake),
		RootFolderPath:   s.RootFolderPath,
		Status:           s.Status,
		Network:          s.Network,
		Year:             s.Year,
		Genres:           s.Genres,
		Path:             s.Path,
		QualityProfileID: s.QualityProfileID,
	}

	if libraryID, ok := s.ID.Get(); ok && libraryID > 0 {
		monitored := s.Monitored != nil && *s.Monitored
		show.Monitored = &monitored
	}

	if len(s.Seasons) > 0 {
		show.Seasons = make([]Season, 0, len(s.Seasons))
		for _, season := range s.Seasons {
			show.Seasons = append(show.Seasons, seasonFrom(season))
		}
	}
	return show, nil
}

// ToLibraryModel builds the create request for adding the show under
// rootFolder. The library path is rootFolder + "/" + Name.
func (s Show) ToLibraryModel(rootFolder string, qualityProfileID int, searchNow bool) (sonarr.AddSeriesRequest, error) {
	tvdbID, ok := s.TVDBID.Get()
	if !ok {
		return sonarr.AddSeriesRequest{}, fmt.Errorf("%w: %q", ErrUnidentified, s.Name)
	}
	if rootFolder == "" {
		return sonarr.AddSeriesRequest{}, ErrNoRootFolder
	}

	return sonarr.AddSeriesRequest{
		Title:            s.Name,
		QualityProfileID: qualityProfileID,
		Monitored:        true,
		Path:             rootFolder + "/" + s.Name,
		RootFolderPath:   rootFolder,
		TVDBID:           tvdbID,
		SeasonFolder:     true,
		AddOptions:       &sonarr.AddOptions{SearchForMissingEpisodes: searchNow},
	}, nil
}

func seasonFrom(s sonarr.Season) Season {
	out := Season{Number: s.SeasonNumber, Monitored: s.Monitored}
	if st := s.Statistics; st != nil {
		out.Statistics = &SeasonStatistics{
			EpisodeFileCount:  st.EpisodeFileCount,
			EpisodeCount:      st.EpisodeCount,
			TotalEpisodeCount: st.TotalEpisodeCount,
			SizeOnDisk:        st.SizeOnDisk,
			PercentOfEpisodes: st.PercentOfEpisodes,
		}
	}
	return out
}

func episodeFrom(e sonarr.Episode, showTitle string) Episode {
	return Episode{
		ID:            e.ID,
		SeriesID:      e.SeriesID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		AirDate:       e.AirDate,
		AirDateUTC:    e.AirDateUTC,
		Overview:      e.Overview,
		Monitored:     e.Monitored,
		HasFile:       e.HasFile,
		EpisodeFileID: e.EpisodeFileID,
		ShowTitle:     showTitle,
	}
}

func downloadFrom(q sonarr.QueueItem) DownloadItem {
	item := DownloadItem{
		ID:        q.ID,
		SeriesID:  q.SeriesID,
		EpisodeID: q.EpisodeID,
		Title:     q.Title,
		Size:      q.Size,
		SizeLeft:  q.SizeLeft,
		Status:    q.Status,
		TimeLeft:  q.TimeLeft,
		Quality: Quality{
			Name:       q.Quality.Quality.Name,
			Resolution: q.Quality.Quality.Resolution,
		},
	}
	if t, err := time.Parse(time.RFC3339, q.EstimatedCompletionTime); err == nil {
		item.EstimatedCompletion = t
	}
	return item
}

type artwork struct {
	coverType string
	remoteURL string
}

func tmdbArtwork(images []tmdb.Image) []artwork {
	out := make([]artwork, len(images))
	for i, img := range images {
		out[i] = artwork{img.CoverType, img.RemoteURL}
	}
	return out
}

func sonarrArtwork(images []sonarr.Image) []artwork {
	out := make([]artwork, len(images))
	for i, img := range images {
		out[i] = artwork{img.CoverType, img.RemoteURL}
	}
	return out
}

func tmdbRating(r *tmdb.Ratings) *float64 {
	if r == nil {
		return nil
	}
	return &r.Value
}

func sonarrRating(r *sonarr.Ratings) *float64 {
	if r == nil {
		return nil
	}
	return &r.Value
}

// pickPoster returns the direct poster reference when present, otherwise
// the remote URL of the first "poster" image.
func pickPoster(direct string, images []artwork) string {
	if strings.TrimSpace(direct) != "" {
		return direct
	}
	for _, img := range images {
		if img.coverType == "poster" && img.remoteURL != "" {
			return img.remoteURL
		}
	}
	return ""
}

// pickVote prefers vote_average over ratings.value.
func pickVote(voteAverage, ratingsValue *float64) *float64 {
	if voteAverage != nil {
		return voteAverage
	}
	if ratingsValue != nil {
		v := *ratingsValue
		return &v
	}
	return nil
}

func firstInt(candidates ...jsonx.Int) (int64, bool) {
	for _, c := range candidates {
		if v, ok := c.Get(); ok {
			return v, true
		}
	}
	return 0, false
}

func firstString(candidates ...jsonx.String) (string, bool) {
	for _, c := range candidates {
		if v, ok := c.Get(); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// externalID returns the first positive candidate.
func externalID(candidates ...jsonx.Int) ExternalID {
	for _, c := range candidates {
		if id := Identified(c.Value); c.Valid && id.IsIdentified() {
			return id
		}
	}
	return Unidentified()
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
