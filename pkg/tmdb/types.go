// Package tmdb provides a client for the TV endpoints of The Movie Database API.
package tmdb

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vmunix/sonarrplus/pkg/jsonx"
)

// ImageBaseURL prefixes relative poster paths.
const ImageBaseURL = "https://image.tmdb.org/t/p/"

// DefaultPosterSize is the thumbnail width used by list views.
const DefaultPosterSize = "w154"

// TVShow is a TV result in TMDB's shape. Identifier and name fields are
// lenient; the caller decides which of them are usable.
type TVShow struct {
	ID            jsonx.Int    `json:"id"`
	TVDBIDSnake   jsonx.Int    `json:"tvdb_id"`
	TVDBID        jsonx.Int    `json:"tvdbId"`
	Name          jsonx.String `json:"name"`
	Title         jsonx.String `json:"title"`
	OriginalName  string       `json:"original_name,omitempty"`
	Overview      string       `json:"overview"`
	PosterPath    string       `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath  string       `json:"backdrop_path"`
	FirstAirDate  string       `json:"first_air_date"` // "2008-01-20"
	VoteAverage   *float64     `json:"vote_average"`
	Ratings       *Ratings     `json:"ratings,omitempty"`
	Images        []Image      `json:"images,omitempty"`
	VoteCount     int          `json:"vote_count"`
	Popularity    float64      `json:"popularity"`
	GenreIDs      []int        `json:"genre_ids,omitempty"`
	OriginCountry []string     `json:"origin_country,omitempty"`
}

// Image is an artwork entry some TMDB-shaped feeds embed instead of a
// poster_path.
type Image struct {
	CoverType string `json:"coverType"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// Ratings is the nested rating object used when vote_average is absent.
type Ratings struct {
	Value float64 `json:"value"`
}

// Year extracts the year from FirstAirDate.
func (s *TVShow) Year() int {
	if len(s.FirstAirDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s.FirstAirDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// resultPage is the envelope of every list endpoint.
type resultPage struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	Results      []json.RawMessage `json:"results"`
}

// Genre is a TMDB TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TVGenres are the genre rails offered for discovery.
var TVGenres = []Genre{
	{ID: 18, Name: "Drama"},
	{ID: 35, Name: "Comedy"},
	{ID: 10759, Name: "Action & Adventure"},
	{ID: 10765, Name: "Sci-Fi & Fantasy"},
	{ID: 80, Name: "Crime"},
	{ID: 9648, Name: "Mystery"},
	{ID: 16, Name: "Animation"},
	{ID: 10751, Name: "Family"},
	{ID: 99, Name: "Documentary"},
	{ID: 10764, Name: "Reality"},
}

// GenreByID returns the named genre, if known.
func GenreByID(id int) (Genre, bool) {
	for _, g := range TVGenres {
		if g.ID == id {
			return g, true
		}
	}
	return Genre{}, false
}

// PosterURL returns a full image URL for a poster reference.
// Absolute URLs are returned as is; relative paths are expanded with size
// (w92, w154, w185, w342, w500, w780, original).
func PosterURL(ref, size string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	}
	if size == "" {
		size = DefaultPosterSize
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return ImageBaseURL + size + ref
}
