package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 500, "500 B"},
		{"exactly 1KB", 1024, "1.0 KB"},
		{"1.5KB", 1536, "1.5 KB"},
		{"exactly 1MB", 1024 * 1024, "1.0 MB"},
		{"1GB", 1073741824, "1.0 GB"},
		{"11.2GB", 12000000000, "11.2 GB"},
		{"exactly 1TB", 1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{"negative", -100, "-100 B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSize(tt.bytes))
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTimeAgo(now.Add(-tt.ago), now))
	}
	assert.Equal(t, "never", formatTimeAgo(time.Time{}, now))
}

func TestFormatUntil(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "now", formatUntil(now, now))
	assert.Equal(t, "in 30m", formatUntil(now.Add(30*time.Minute), now))
	assert.Equal(t, "in 36h", formatUntil(now.Add(36*time.Hour), now))
	assert.Equal(t, "in 3d", formatUntil(now.Add(80*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Breaking...", truncate("Breaking Bad Season", 11))
	assert.Equal(t, "Ünïcödé...", truncate("Ünïcödé Title", 10))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ", "series id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "x"} {
		_, err := parseID(bad, "series id")
		assert.Error(t, err, bad)
	}
}
