package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalID(t *testing.T) {
	id := Identified(81189)
	v, ok := id.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(81189), v)
	assert.Equal(t, "81189", id.String())

	for _, bad := range []int64{0, -1} {
		assert.False(t, Identified(bad).IsIdentified())
	}
	assert.Equal(t, "unresolved", Unidentified().String())
	assert.Equal(t, Unidentified(), ExternalID{})
}

func TestExternalID_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A ExternalID `json:"a"`
		B ExternalID `json:"b"`
	}{Identified(5), Unidentified()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5,"b":null}`, string(data))

	var got struct {
		A ExternalID `json:"a"`
		B ExternalID `json:"b"`
		C ExternalID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":5,"b":null,"c":0}`), &got))
	assert.Equal(t, Identified(5), got.A)
	assert.False(t, got.B.IsIdentified())
	assert.False(t, got.C.IsIdentified())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"five"}`), &got))
}

func TestEpisode_CodeAndAirsAt(t *testing.T) {
	ep := Episode{SeasonNumber: 1, EpisodeNumber: 2}
	assert.Equal(t, "S01E02", ep.Code())

	_, ok := ep.AirsAt()
	assert.False(t, ok)

	ep.AirDate = "2026-10-15"
	at, ok := ep.AirsAt()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), at)

	utc := time.Date(2026, 10, 15, 2, 0, 0, 0, time.UTC)
	ep.AirDateUTC = utc
	at, ok = ep.AirsAt()
	require.True(t, ok)
	assert.Equal(t, utc, at)

	_, ok = Episode{AirDate: "tomorrow"}.AirsAt()
	assert.False(t, ok)
}

func TestDownloadItem_Progress(t *testing.T) {
	tests := []struct {
		size, left float64
		want       float64
	}{
		{100, 25, 0.75},
		{100, 0, 1},
		{100, 100, 0},
		{0, 0, 0},
		{100, 150, 0},
		{100, -10, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DownloadItem{Size: tt.size, SizeLeft: tt.left}.Progress(), 0.0001)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"trending", CategoryTrending},
		{"Popular", CategoryPopular},
		{" top-rated ", CategoryTopRated},
		{"genre:16", GenreCategory(16)},
		{"18", GenreCategory(18)},
		{"drama", GenreCategory(18)},
		{"Sci-Fi & Fantasy", GenreCategory(10765)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "bogus", "genre:", "genre:abc", "-4"} {
		_, err := ParseCategory(bad)
		assert.ErrorIs(t, err, ErrUnknownCategory, bad)
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Trending", CategoryTrending.Label())
	assert.Equal(t, "Top Rated", CategoryTopRated.Label())
	assert.Equal(t, "Drama", GenreCategory(18).Label())
	assert.Equal(t, "Genre 37", GenreCategory(37).Label())
	assert.Equal(t, "weird", Category("weird").Label())

	cats := Categories()
	assert.Len(t, cats, 13)
	assert.Equal(t, CategoryTrending, cats[0])
}
