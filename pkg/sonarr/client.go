package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const apiPrefix = "/api/v3"

// maxErrorBody caps how much of an error response is kept in a StatusError.
const maxErrorBody = 512

// session is the endpoint and credential every request is made with.
type session struct {
	baseURL string
	apiKey  string
}

// Client is a Sonarr v3 API client. It holds at most one session, set by a
// successful Authenticate and cleared by Disconnect. Each request reads the
// session once, so a concurrent Disconnect never produces a half-updated
// request.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger

	mu      sync.RWMutex
	session *session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "sonarr")
	}
}

// WithSession installs credentials without probing the server.
func WithSession(baseURL, apiKey string) Option {
	return func(c *Client) {
		c.session = &session{baseURL: strings.TrimSuffix(baseURL, "/"), apiKey: apiKey}
	}
}

// New creates a new Sonarr client with no session.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate probes GET /system/status with the supplied credential.
// Only an HTTP 200 counts as success; on any failure the previous session
// is left untouched and nothing new is retained.
func (c *Client) Authenticate(ctx context.Context, baseURL, apiKey string) (*SystemStatus, error) {
	s := session{baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"), apiKey: apiKey}

	req, err := c.newRequest(ctx, s, http.MethodGet, "/system/status", nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("status probe rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrInvalidAPIKey, resp.StatusCode)
	}

	var status SystemStatus
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	// Some reverse proxies answer 200 with an empty body; that still counts.
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &status); err != nil {
			c.log.Debug("status probe body not decodable", "error", err)
		}
	}

	c.mu.Lock()
	c.session = &s
	c.mu.Unlock()

	c.log.Debug("authenticated with sonarr", "version", status.Version)
	return &status, nil
}

// Disconnect forgets the current session.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// Connected reports whether a session is held.
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil
}

// BaseURL returns the session's base URL, or "" when not connected.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.baseURL
}

func (c *Client) current() (session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil || c.session.baseURL == "" || c.session.apiKey == "" {
		return session{}, ErrNotConfigured
	}
	return *c.session, nil
}

// newRequest builds an authenticated request for path under /api/v3.
func (c *Client) newRequest(ctx context.Context, s session, method, path string, query url.Values, body any) (*http.Request, error) {
	u, err := url.Parse(s.baseURL + apiPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, s.baseURL)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case json.RawMessage:
		// sent verbatim; json.Marshal would re-escape HTML characters
		reader = bytes.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes a request and returns the response body. The status must be
// one of accept (200 when empty).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, accept ...int) ([]byte, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, s, method, path, query, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	c.log.Debug("sonarr request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if len(accept) == 0 {
		accept = []int{http.StatusOK}
	}
	for _, code := range accept {
		if resp.StatusCode == code {
			return data, nil
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidAPIKey
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}

	text := strings.TrimSpace(string(data))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: text}
}

// getJSON GETs path and decodes the body into result.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, result any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(data, result)
}

func decode(data []byte, result any) error {
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// decodeEach decodes a JSON array element by element. Elements that fail to
// decode are logged and skipped; only a body that is not an array fails.
func decodeEach[T any](log *slog.Logger, data []byte, what string) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, what, err)
	}

	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			log.Warn("dropping undecodable record", "kind", what, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
