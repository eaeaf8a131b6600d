package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "sonarrplus", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	// Check for key sections
	assert.Contains(t, string(content), "[log]")
	assert.Contains(t, string(content), "[tmdb]")
	assert.Contains(t, string(content), "[sonarr]")
	assert.Contains(t, string(content), "${TMDB_API_KEY:-}")
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "config.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	_, err = os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}

func TestWriteDefault_Loads(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("SONARR_URL", "")
	t.Setenv("SONARR_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
	assert.Empty(t, cfg.Sonarr.URL)
}

func TestConfig_Encode(t *testing.T) {
	cfg := Default()
	cfg.TMDB.APIKey = "abcdef123456"
	cfg.Sonarr = SonarrConfig{URL: "http://nas:8989", APIKey: "xyz"}

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	out := buf.String()
	assert.Contains(t, out, "[sonarr]")
	assert.Contains(t, out, "http://nas:8989")
	assert.Contains(t, out, "****3456")
	assert.NotContains(t, out, "abcdef123456")
	assert.NotContains(t, out, `"xyz"`)
	assert.Equal(t, "abcdef123456", cfg.TMDB.APIKey, "original untouched")
}
