package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const popularPage = `{"page":1,"total_pages":1,"total_results":3,"results":[` +
	`{"id":1396,"name":"Breaking Bad","overview":"A chemistry teacher...","poster_path":"/ggFHVNu6YYI5L9pCfOacjizRGt.jpg","first_air_date":"2008-01-20","vote_average":8.9,"genre_ids":[18,80]},` +
	`{"id":"oops","name":"Broken id"},` +
	`{"id":2,"name":"Bad rating","vote_average":"high"}]}`

func TestClient_Popular(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(popularPage))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	shows, err := client.Popular(context.Background())
	require.NoError(t, err)
	// The mistyped id still decodes (invalid); the mistyped rating is dropped.
	require.Len(t, shows, 2)

	bb := shows[0]
	assert.Equal(t, int64(1396), bb.ID.Value)
	assert.Equal(t, "Breaking Bad", bb.Name.Value)
	assert.Equal(t, 2008, bb.Year())
	require.NotNil(t, bb.VoteAverage)
	assert.InDelta(t, 8.9, *bb.VoteAverage, 0.001)
	assert.Equal(t, []int{18, 80}, bb.GenreIDs)

	assert.False(t, shows[1].ID.Valid)
}

func TestClient_Endpoints(t *testing.T) {
	var gotPath, gotGenre, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenre = r.URL.Query().Get("with_genres")
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient("k", WithBaseURL(server.URL), WithCacheTTL(0))
	ctx := context.Background()

	_, err := client.OnTheAir(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/3/tv/on_the_air", gotPath)

	_, err = client.TopRated(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/3/tv/top_rated", gotPath)

	_, err = client.DiscoverByGenre(ctx, 10765)
	require.NoError(t, err)
	assert.Equal(t, "/3/discover/tv", gotPath)
	assert.Equal(t, "10765", gotGenre)

	shows, err := client.Search(ctx, "  dark ")
	require.NoError(t, err)
	assert.Equal(t, "/3/search/tv", gotPath)
	assert.Equal(t, "dark", gotQuery)
	assert.NotNil(t, shows)
}

func TestClient_Search_BlankQuery(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	shows, err := NewClient("k", WithBaseURL(server.URL)).Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, shows)
	assert.Zero(t, calls.Load())
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"status_code":7}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ``, ErrUnexpectedResponse},
		{"not json", http.StatusOK, `<html></html>`, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			shows, err := NewClient("k", WithBaseURL(server.URL)).Popular(context.Background())
			assert.Nil(t, shows)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient("k", WithBaseURL(url)).Popular(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Cached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(popularPage))
	}))
	defer server.Close()

	client := NewClient("k", WithBaseURL(server.URL), WithCacheTTL(time.Hour))

	_, err := client.Popular(context.Background())
	require.NoError(t, err)
	_, err = client.Popular(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "should use cache, not call API again")

	_, err = client.TopRated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "different endpoint is a different key")

	client.cache.clear()
	_, err = client.Popular(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.set("a", []TVShow{{Overview: "x"}})
	_, ok := c.get("a")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.get("a")
	assert.False(t, ok)
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient("k", WithBaseURL(server.URL), WithCacheTTL(0), WithRateLimit(0.001, 1))

	_, err := client.Popular(context.Background())
	require.NoError(t, err, "first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Popular(ctx)
	assert.Error(t, err)
}

func TestPosterURL(t *testing.T) {
	tests := []struct {
		ref, size, want string
	}{
		{"", "w154", ""},
		{"/abc.jpg", "w154", "https://image.tmdb.org/t/p/w154/abc.jpg"},
		{"abc.jpg", "w500", "https://image.tmdb.org/t/p/w500/abc.jpg"},
		{"/abc.jpg", "", "https://image.tmdb.org/t/p/w154/abc.jpg"},
		{"https://artworks.thetvdb.com/banners/posters/81189-10.jpg", "w154", "https://artworks.thetvdb.com/banners/posters/81189-10.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PosterURL(tt.ref, tt.size), "ref %q", tt.ref)
	}
}

func TestGenreByID(t *testing.T) {
	g, ok := GenreByID(10765)
	require.True(t, ok)
	assert.Equal(t, "Sci-Fi & Fantasy", g.Name)

	_, ok = GenreByID(1)
	assert.False(t, ok)
}
