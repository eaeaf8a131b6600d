package sonarr

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

// writeJSON is a helper that writes a JSON response, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient returns a client already holding a session for srv.
func newTestClient(srv *httptest.Server) *Client {
	return New(WithSession(srv.URL, testKey), WithLogger(testLogger()))
}

func TestClient_Authenticate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/system/status", r.URL.Path)
		assert.Equal(t, testKey, r.Header.Get("X-Api-Key"))
		writeJSON(t, w, SystemStatus{AppName: "Sonarr", Version: "3.0.10.1567"})
	}))
	defer srv.Close()

	client := New()
	require.False(t, client.Connected())

	status, err := client.Authenticate(context.Background(), srv.URL+"/", testKey)
	require.NoError(t, err)
	assert.Equal(t, "3.0.10.1567", status.Version)
	assert.True(t, client.Connected())
	assert.Equal(t, srv.URL, client.BaseURL(), "trailing slash should be trimmed")
}

func TestClient_Authenticate_RejectsNon200(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusAccepted, http.StatusInternalServerError, http.StatusNotFound} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			}))
			defer srv.Close()

			client := New()
			_, err := client.Authenticate(context.Background(), srv.URL, "bad-key")
			require.ErrorIs(t, err, ErrInvalidAPIKey)
			assert.False(t, client.Connected(), "credentials must not be retained on failure")

			_, err = client.AllSeries(context.Background())
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestClient_Authenticate_MalformedURL(t *testing.T) {
	client := New()
	for _, base := range []string{"", "not a url", "ftp://example.com", "http://"} {
		_, err := client.Authenticate(context.Background(), base, testKey)
		assert.ErrorIs(t, err, ErrInvalidURL, "base %q", base)
	}
	assert.False(t, client.Connected())
}

func TestClient_Authenticate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New()
	_, err := client.Authenticate(context.Background(), url, testKey)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsTransport(err))
	assert.False(t, client.Connected())
}

func TestClient_Authenticate_FailureKeepsPreviousSession(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, SystemStatus{Version: "3"})
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer bad.Close()

	client := New()
	_, err := client.Authenticate(context.Background(), good.URL, testKey)
	require.NoError(t, err)

	_, err = client.Authenticate(context.Background(), bad.URL, "other")
	require.Error(t, err)
	assert.Equal(t, good.URL, client.BaseURL())
}

func TestClient_Disconnect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []Series{})
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.AllSeries(context.Background())
	require.NoError(t, err)

	client.Disconnect()
	_, err = client.AllSeries(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, client.BaseURL())
}

func TestClient_StatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/series/1":
			w.WriteHeader(http.StatusNotFound)
		case "/api/v3/series/2":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.GetSeries(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetSeries(context.Background(), 2)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	_, err = client.GetSeries(context.Background(), 3)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "upstream down", statusErr.Body)
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login</html>`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.RootFolders(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedResponse)

	_, err = client.AllSeries(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}
