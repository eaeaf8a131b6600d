package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultLanguage = "en-US"
	defaultCacheTTL = 10 * time.Minute

	// TMDB allows roughly 50 requests per second per IP.
	defaultRatePerSecond = 40
	defaultBurst         = 20
)

var (
	// ErrUnavailable indicates TMDB could not be reached.
	ErrUnavailable = errors.New("tmdb unavailable")

	// ErrUnauthorized is returned when TMDB rejects the API key.
	ErrUnauthorized = errors.New("tmdb rejected api key")

	// ErrUnexpectedResponse indicates a non-200 status or an undecodable body.
	ErrUnexpectedResponse = errors.New("unexpected tmdb response")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *cache
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// WithLanguage sets the language query parameter.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithRateLimit caps outgoing requests. perSecond <= 0 disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithCacheTTL sets how long list responses are reused. 0 disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(defaultRatePerSecond, defaultBurst),
		cache:   newCache(defaultCacheTTL),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Popular returns the popular TV rail.
func (c *Client) Popular(ctx context.Context) ([]TVShow, error) {
	return c.list(ctx, "/3/tv/popular", nil)
}

// OnTheAir returns currently airing shows, used as the trending rail.
func (c *Client) OnTheAir(ctx context.Context) ([]TVShow, error) {
	return c.list(ctx, "/3/tv/on_the_air", nil)
}

// TopRated returns the top rated TV rail.
func (c *Client) TopRated(ctx context.Context) ([]TVShow, error) {
	return c.list(ctx, "/3/tv/top_rated", nil)
}

// DiscoverByGenre returns shows tagged with one genre.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) ([]TVShow, error) {
	return c.list(ctx, "/3/discover/tv", url.Values{"with_genres": {strconv.Itoa(genreID)}})
}

// Search runs a free-text TV search. Blank queries return no results
// without a request.
func (c *Client) Search(ctx context.Context, query string) ([]TVShow, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []TVShow{}, nil
	}
	return c.list(ctx, "/3/search/tv", url.Values{"query": {query}})
}

// list fetches one result page of a list endpoint. Records that fail to
// decode are logged and skipped.
func (c *Client) list(ctx context.Context, path string, extra url.Values) ([]TVShow, error) {
	params := url.Values{
		"language": {c.language},
		"page":     {"1"},
	}
	for k, v := range extra {
		params[k] = v
	}

	key := path + "?" + params.Encode()
	if shows, ok := c.cache.get(key); ok {
		return shows, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	// api_key stays out of the cache key and the logs.
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("tmdb request",
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.Status)
	}

	var page resultPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUnexpectedResponse, err)
	}

	shows := make([]TVShow, 0, len(page.Results))
	for i, raw := range page.Results {
		var s TVShow
		if err := json.Unmarshal(raw, &s); err != nil {
			c.log.Warn("dropping undecodable result", "path", path, "index", i, "error", err)
			continue
		}
		shows = append(shows, s)
	}

	c.cache.set(key, shows)
	return shows, nil
}
