package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/sonarrplus/pkg/sonarr"
	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

func decodeTVShow(t *testing.T, raw string) tmdb.TVShow {
	t.Helper()
	var s tmdb.TVShow
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func decodeSeries(t *testing.T, raw string) sonarr.Series {
	t.Helper()
	var s sonarr.Series
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func ptr[T any](v T) *T { return &v }

func TestFromDiscovery(t *testing.T) {
	show, err := FromDiscovery(decodeTVShow(t, `{
		"id": 1396,
		"name": "Breaking Bad",
		"overview": "A chemistry teacher...",
		"poster_path": "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
		"first_air_date": "2008-01-20",
		"vote_average": 8.9
	}`))
	require.NoError(t, err)

	assert.Equal(t, int64(1396), show.ID)
	assert.Equal(t, "Breaking Bad", show.Name)
	assert.Equal(t, "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg", show.Poster)
	assert.Equal(t, 2008, show.Year)
	require.NotNil(t, show.VoteAverage)
	assert.InDelta(t, 8.9, *show.VoteAverage, 0.001)
	assert.False(t, show.TVDBID.IsIdentified())
	assert.False(t, show.InLibrary())
	assert.Equal(t, "https://image.tmdb.org/t/p/w342/ggFHVNu6YYI5L9pCfOacjizRGt.jpg", show.PosterURL("w342"))
}

func TestFromDiscovery_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantID   int64
		wantName string
		wantTVDB string
	}{
		{"id wins", `{"id": 7, "tvdb_id": 8, "tvdbId": 9, "name": "A"}`, 7, "A", "8"},
		{"mistyped id falls through", `{"id": "x", "tvdb_id": 81189, "title": "Breaking Bad"}`, 81189, "Breaking Bad", "81189"},
		{"camel tvdb id", `{"tvdbId": 5, "name": "B"}`, 5, "B", "5"},
		{"name before title", `{"id": 3, "name": "Name", "title": "Title"}`, 3, "Name", "unresolved"},
		{"empty name uses title", `{"id": 3, "name": "", "title": "Title"}`, 3, "Title", "unresolved"},
		{"zero tvdb id is unresolved", `{"id": 3, "tvdb_id": 0, "name": "C"}`, 3, "C", "unresolved"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			show, err := FromDiscovery(decodeTVShow(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, show.ID)
			assert.Equal(t, tt.wantName, show.Name)
			assert.Equal(t, tt.wantTVDB, show.TVDBID.String())
		})
	}
}

func TestFromDiscovery_Invalid(t *testing.T) {
	for _, raw := range []string{
		`{"name": "No id"}`,
		`{"id": "1396", "name": "String id"}`,
		`{"id": 3}`,
		`{"id": 3, "name": "  "}`,
	} {
		_, err := FromDiscovery(decodeTVShow(t, raw))
		assert.ErrorIs(t, err, ErrInvalidRecord, raw)
	}
}

func TestFromLibrary(t *testing.T) {
	show, err := FromLibrary(decodeSeries(t, `{
		"id": 12,
		"tvdbId": 81189,
		"title": "Breaking Bad",
		"status": "ended",
		"year": 2008,
		"firstAired": "2008-01-20T00:00:00Z",
		"monitored": true,
		"path": "/tv/Breaking Bad",
		"rootFolderPath": "/tv",
		"qualityProfileId": 4,
		"ratings": {"votes": 100, "value": 8.7},
		"images": [
			{"coverType": "banner", "remoteUrl": "https://img/banner.jpg"},
			{"coverType": "poster", "remoteUrl": "https://img/poster.jpg"}
		],
		"seasons": [
			{"seasonNumber": 1, "monitored": true, "statistics": {"episodeFileCount": 7, "episodeCount": 7, "totalEpisodeCount": 7, "sizeOnDisk": 1024}},
			{"seasonNumber": 2, "monitored": false}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, int64(12), show.ID)
	assert.Equal(t, "Breaking Bad", show.Name)
	assert.Equal(t, "81189", show.TVDBID.String())
	assert.Equal(t, "https://img/poster.jpg", show.Poster)
	assert.Equal(t, "https://img/poster.jpg", show.PosterURL(""))
	assert.Equal(t, "2008-01-20", show.FirstAirDate)
	require.NotNil(t, show.VoteAverage)
	assert.InDelta(t, 8.7, *show.VoteAverage, 0.001)
	require.NotNil(t, show.Monitored)
	assert.True(t, *show.Monitored)
	assert.True(t, show.InLibrary())
	assert.Equal(t, "/tv", show.RootFolderPath)
	assert.Equal(t, 4, show.QualityProfileID)

	require.Len(t, show.Seasons, 2)
	s1, ok := show.Season(1)
	require.True(t, ok)
	require.NotNil(t, s1.Statistics)
	assert.Equal(t, 7, s1.Statistics.EpisodeFileCount)
	s2, ok := show.Season(2)
	require.True(t, ok)
	assert.False(t, s2.Monitored)
	assert.Nil(t, s2.Statistics)
	_, ok = show.Season(9)
	assert.False(t, ok)
}

func TestFromLibrary_LookupResult(t *testing.T) {
	show, err := FromLibrary(decodeSeries(t, `{
		"tvdbId": 81189,
		"title": "Breaking Bad",
		"remotePoster": "https://img/direct.jpg",
		"images": [{"coverType": "poster", "remoteUrl": "https://img/poster.jpg"}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, int64(81189), show.ID)
	assert.Equal(t, "https://img/direct.jpg", show.Poster, "direct poster wins over images")
	assert.Nil(t, show.Monitored)
	assert.False(t, show.InLibrary())
	assert.Nil(t, show.VoteAverage)
}

func TestPickPoster(t *testing.T) {
	images := sonarrArtwork([]sonarr.Image{
		{CoverType: "fanart", RemoteURL: "https://img/fanart.jpg"},
		{CoverType: "poster"},
		{CoverType: "poster", RemoteURL: "https://img/poster.jpg"},
	})
	assert.Equal(t, "/direct.jpg", pickPoster("/direct.jpg", images))
	assert.Equal(t, "https://img/poster.jpg", pickPoster("", images))
	assert.Equal(t, "https://img/poster.jpg", pickPoster("  ", images))
	assert.Equal(t, "", pickPoster("", images[:1]))
	assert.Equal(t, "", pickPoster("", nil))
}

func TestPickVote(t *testing.T) {
	direct := 7.5
	assert.Equal(t, &direct, pickVote(&direct, sonarrRating(&sonarr.Ratings{Value: 9})))

	got := pickVote(nil, sonarrRating(&sonarr.Ratings{Value: 9}))
	require.NotNil(t, got)
	assert.InDelta(t, 9.0, *got, 0.001)

	assert.Nil(t, pickVote(nil, nil))
	assert.Nil(t, pickVote(nil, tmdbRating(nil)))
}

func TestFromDiscovery_ImagesAndRatings(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantPoster string
		wantVote   *float64
	}{
		{
			name:       "images and ratings only",
			raw:        `{"id":5,"name":"X","images":[{"coverType":"poster","remoteUrl":"https://img/p.jpg"}],"ratings":{"value":8.1}}`,
			wantPoster: "https://img/p.jpg",
			wantVote:   ptr(8.1),
		},
		{
			name:       "direct fields win",
			raw:        `{"id":5,"name":"X","poster_path":"/d.jpg","vote_average":6.5,"images":[{"coverType":"poster","remoteUrl":"https://img/p.jpg"}],"ratings":{"value":8.1}}`,
			wantPoster: "/d.jpg",
			wantVote:   ptr(6.5),
		},
		{
			name:       "first poster entry",
			raw:        `{"id":5,"name":"X","images":[{"coverType":"banner","remoteUrl":"https://img/b.jpg"},{"coverType":"poster","remoteUrl":"https://img/1.jpg"},{"coverType":"poster","remoteUrl":"https://img/2.jpg"}]}`,
			wantPoster: "https://img/1.jpg",
		},
		{
			name: "neither",
			raw:  `{"id":5,"name":"X"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			show, err := FromDiscovery(decodeTVShow(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPoster, show.Poster)
			if tt.wantVote == nil {
				assert.Nil(t, show.VoteAverage)
				return
			}
			require.NotNil(t, show.VoteAverage)
			assert.InDelta(t, *tt.wantVote, *show.VoteAverage, 0.001)
		})
	}
}

func TestToLibraryModel(t *testing.T) {
	show := Show{ID: 1396, Name: "Breaking Bad", TVDBID: Identified(81189)}

	req, err := show.ToLibraryModel("/tv", 4, true)
	require.NoError(t, err)

	assert.Equal(t, "Breaking Bad", req.Title)
	assert.Equal(t, int64(81189), req.TVDBID)
	assert.Equal(t, "/tv/Breaking Bad", req.Path)
	assert.Equal(t, "/tv", req.RootFolderPath)
	assert.Equal(t, 4, req.QualityProfileID)
	assert.True(t, req.Monitored)
	assert.True(t, req.SeasonFolder)
	require.NotNil(t, req.AddOptions)
	assert.True(t, req.AddOptions.SearchForMissingEpisodes)

	// The root is joined as given.
	req, err = show.ToLibraryModel("/tv/", 4, false)
	require.NoError(t, err)
	assert.Equal(t, "/tv//Breaking Bad", req.Path)
	assert.False(t, req.AddOptions.SearchForMissingEpisodes)
}

func TestToLibraryModel_RoundTrip(t *testing.T) {
	show := Show{ID: 1396, Name: "Dark", TVDBID: Identified(334824)}

	req, err := show.ToLibraryModel("/media/tv", 2, false)
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	back, err := FromLibrary(decodeSeries(t, string(body)))
	require.NoError(t, err)
	assert.Equal(t, "Dark", back.Name)
	assert.Equal(t, Identified(334824), back.TVDBID)
	assert.Equal(t, "/media/tv/Dark", back.Path)
	assert.Equal(t, "/media/tv", back.RootFolderPath)
	assert.Equal(t, 2, back.QualityProfileID)
}

func TestToLibraryModel_Errors(t *testing.T) {
	_, err := Show{Name: "Unknown", TVDBID: Unidentified()}.ToLibraryModel("/tv", 1, false)
	assert.ErrorIs(t, err, ErrUnidentified)

	_, err = Show{Name: "Dark", TVDBID: Identified(1)}.ToLibraryModel("", 1, false)
	assert.ErrorIs(t, err, ErrNoRootFolder)
}

func TestDownloadFrom(t *testing.T) {
	item := downloadFrom(sonarr.QueueItem{
		ID:                      5,
		Title:                   "Dark.S01E01.1080p",
		Size:                    1000,
		SizeLeft:                250,
		Status:                  "downloading",
		EstimatedCompletionTime: "2026-10-14T12:00:00Z",
	})
	assert.Equal(t, int64(5), item.ID)
	assert.Equal(t, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC), item.EstimatedCompletion.UTC())
	assert.InDelta(t, 0.75, item.Progress(), 0.0001)

	item = downloadFrom(sonarr.QueueItem{ID: 6, EstimatedCompletionTime: "soon"})
	assert.True(t, item.EstimatedCompletion.IsZero())
	assert.Equal(t, 0.0, item.Progress())
}
