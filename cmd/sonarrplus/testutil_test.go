package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockServer creates an httptest.Server with common test patterns.
// It provides a fluent API for setting up expected request verification
// and response configuration.
type mockServer struct {
	t          *testing.T
	handler    http.HandlerFunc
	expectPath string
	expectMeth string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t}
}

func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

func (m *mockServer) ExpectGET() *mockServer {
	m.expectMeth = http.MethodGet
	return m
}

// RespondJSON sets up a handler that responds with JSON-encoded data.
func (m *mockServer) RespondJSON(v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, v)
	}
	return m
}

func (m *mockServer) RespondStatus(code int) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
	return m
}

// Build creates the server and closes it when the test ends.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

// respondJSON writes a JSON response with proper content-type header.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

const testAPIKey = "good-key"

// fakeSonarr is an in-memory Sonarr v3 API.
type fakeSonarr struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	series   []map[string]any
	episodes []map[string]any
	queue    []map[string]any
	added    []map[string]any
	deleted  []string // "queue/1", "episodefile/9"
	monitor  map[string]bool
	failPut  bool
}

func newFakeSonarr(t *testing.T) *fakeSonarr {
	t.Helper()
	f := &fakeSonarr{t: t, monitor: map[string]bool{}}
	f.series = []map[string]any{
		{
			"id": 1, "title": "Breaking Bad", "tvdbId": 81189, "status": "ended", "monitored": true,
			"year": 2008, "network": "AMC", "path": "/tv/Breaking Bad",
			"ratings": map[string]any{"value": 9.5, "votes": 100},
			"seasons": []map[string]any{
				{"seasonNumber": 1, "monitored": true, "statistics": map[string]any{"episodeFileCount": 7, "episodeCount": 7, "sizeOnDisk": 1 << 30}},
				{"seasonNumber": 2, "monitored": false},
			},
		},
		{"id": 2, "title": "Andor", "tvdbId": 393189, "status": "continuing", "monitored": true},
	}
	f.episodes = []map[string]any{
		{"id": 11, "seriesId": 1, "seasonNumber": 1, "episodeNumber": 2, "title": "Cat's in the Bag...", "airDate": "2008-01-27", "monitored": true},
		{"id": 10, "seriesId": 1, "seasonNumber": 1, "episodeNumber": 1, "title": "Pilot", "airDate": "2008-01-20", "monitored": true, "hasFile": true, "episodeFileId": 9},
		{"id": 20, "seriesId": 1, "seasonNumber": 2, "episodeNumber": 1, "title": "Seven Thirty-Seven", "airDate": "2009-03-08"},
	}
	f.queue = []map[string]any{
		{"id": 5, "title": "Andor.S01E01.1080p", "size": 1000.0, "sizeleft": 250.0, "status": "downloading", "timeleft": "00:10:00",
			"quality": map[string]any{"quality": map[string]any{"name": "HDTV-1080p", "resolution": 1080}}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v3/system/status", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{"appName": "Sonarr", "version": "3.0.10"})
	})
	mux.HandleFunc("GET /api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respondJSON(t, w, f.series)
	})
	mux.HandleFunc("GET /api/v3/series/lookup", func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("term")
		if strings.Contains(strings.ToLower(term), "severance") || term == "tvdb:371980" {
			respondJSON(t, w, []map[string]any{{"title": "Severance", "tvdbId": 371980, "year": 2022}})
			return
		}
		respondJSON(t, w, []map[string]any{})
	})
	mux.HandleFunc("GET /api/v3/series/{id}", func(w http.ResponseWriter, r *http.Request) {
		if s := f.findSeries(r.PathValue("id")); s != nil {
			respondJSON(t, w, s)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("PUT /api/v3/series/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		fail := f.failPut
		f.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		f.monitor["series/"+r.PathValue("id")] = true
		f.mu.Unlock()
		respondJSON(t, w, body)
	})
	mux.HandleFunc("POST /api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		body["id"] = 3
		body["monitored"] = true
		f.mu.Lock()
		f.added = append(f.added, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		respondJSON(t, w, body)
	})
	mux.HandleFunc("GET /api/v3/episode", func(w http.ResponseWriter, r *http.Request) {
		seriesID := r.URL.Query().Get("seriesId")
		season := r.URL.Query().Get("seasonNumber")
		out := []map[string]any{}
		for _, e := range f.episodes {
			if fmt.Sprint(e["seriesId"]) != seriesID {
				continue
			}
			if season != "" && fmt.Sprint(e["seasonNumber"]) != season {
				continue
			}
			out = append(out, e)
		}
		respondJSON(t, w, out)
	})
	mux.HandleFunc("GET /api/v3/episode/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, e := range f.episodes {
			if fmt.Sprint(e["id"]) == r.PathValue("id") {
				respondJSON(t, w, e)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("PUT /api/v3/episode/monitor", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			EpisodeIDs []int64 `json:"episodeIds"`
			Monitored  bool    `json:"monitored"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		for _, id := range body.EpisodeIDs {
			f.monitor["episode/"+strconv.FormatInt(id, 10)] = body.Monitored
		}
		f.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("DELETE /api/v3/episodefile/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.recordDelete("episodefile/" + r.PathValue("id"))
	})
	mux.HandleFunc("POST /api/v3/command", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		respondJSON(t, w, map[string]any{"id": 77, "name": "EpisodeSearch", "status": "queued"})
	})
	mux.HandleFunc("GET /api/v3/queue", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respondJSON(t, w, map[string]any{"page": 1, "totalRecords": len(f.queue), "records": f.queue})
	})
	mux.HandleFunc("DELETE /api/v3/queue/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.recordDelete("queue/" + r.PathValue("id"))
	})
	mux.HandleFunc("GET /api/v3/rootfolder", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, []map[string]any{{"id": 1, "path": "/tv"}, {"id": 2, "path": "/anime"}})
	})
	mux.HandleFunc("GET /api/v3/qualityprofile", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, []map[string]any{{"id": 4, "name": "HD-1080p"}, {"id": 6, "name": "Any"}})
	})
	mux.HandleFunc("GET /api/v3/indexer", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, []map[string]any{{"id": 1, "name": "geek", "enableRss": true, "enableAutomaticSearch": true}})
	})
	mux.HandleFunc("GET /api/v3/diskspace", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, []map[string]any{{"path": "/tv", "freeSpace": float64(1 << 30), "totalSpace": float64(4 << 30)}})
	})

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeSonarr) URL() string { return f.srv.URL }

func (f *fakeSonarr) findSeries(id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.series {
		if fmt.Sprint(s["id"]) == id {
			return s
		}
	}
	return nil
}

func (f *fakeSonarr) recordDelete(what string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, what)
}

func (f *fakeSonarr) monitored(key string) (monitored, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	monitored, ok = f.monitor[key]
	return monitored, ok
}

func (f *fakeSonarr) addedSeries() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.added...)
}

func (f *fakeSonarr) setFailPut(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPut = fail
}

func (f *fakeSonarr) deletes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// fakeTMDB serves every list endpoint with the same results.
func fakeTMDB(t *testing.T, shows ...map[string]any) *httptest.Server {
	t.Helper()
	return newMockServer(t).ExpectGET().RespondJSON(map[string]any{"page": 1, "results": shows}).Build()
}

type testEnv struct {
	t      *testing.T
	dir    string
	config string
	sonarr *fakeSonarr
}

// newTestEnv writes a config pointing at fake servers. With bootstrap the
// [sonarr] section carries the session; otherwise tests run connect.
func newTestEnv(t *testing.T, bootstrap bool, tmdbShows ...map[string]any) *testEnv {
	t.Helper()
	env := &testEnv{t: t, dir: t.TempDir(), sonarr: newFakeSonarr(t)}
	tm := fakeTMDB(t, tmdbShows...)

	var b strings.Builder
	fmt.Fprintf(&b, "[log]\nlevel = \"error\"\n\n")
	fmt.Fprintf(&b, "[database]\npath = %q\n\n", filepath.Join(env.dir, "sonarrplus.db"))
	fmt.Fprintf(&b, "[tmdb]\napi_key = \"tmdb-key\"\nbase_url = %q\n\n", tm.URL)
	if bootstrap {
		fmt.Fprintf(&b, "[sonarr]\nurl = %q\napi_key = %q\n", env.sonarr.URL(), testAPIKey)
	}
	env.config = filepath.Join(env.dir, "config.toml")
	require.NoError(t, os.WriteFile(env.config, []byte(b.String()), 0o600))
	return env
}

// run executes the CLI with --config set and returns its output.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	return runCLI(e.t, "", append([]string{"--config", e.config}, args...)...)
}

// runCLI executes the root command in-process. Flags keep values between
// Execute calls, so every flag is reset first.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := execCLI(t, stdin, args...)
	return out, err
}

// execCLI is runCLI with stderr kept apart from stdout.
func execCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	oldLog := logOutput
	logOutput = io.Discard
	t.Cleanup(func() { logOutput = oldLog })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
