package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "debug"

[tmdb]
api_key = "tmdb-key"
rate_limit = 10
cache_ttl = "1m"

[sonarr]
url = "http://nas:8989"
api_key = "sonarr-key"

[notifications]
window = "48h"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Log.Level)
	}
	if cfg.TMDB.APIKey != "tmdb-key" || cfg.TMDB.RateLimit != 10 {
		t.Errorf("unexpected tmdb config: %+v", cfg.TMDB)
	}
	if cfg.TMDB.CacheTTL != time.Minute {
		t.Errorf("expected cache_ttl 1m, got %s", cfg.TMDB.CacheTTL)
	}
	if cfg.Sonarr.URL != "http://nas:8989" {
		t.Errorf("expected sonarr url, got %q", cfg.Sonarr.URL)
	}
	if cfg.Notifications.Window != 48*time.Hour {
		t.Errorf("expected window 48h, got %s", cfg.Notifications.Window)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("MISSING_KEY")
	cfgPath := writeConfig(t, `
[tmdb]
api_key = "${MISSING_KEY}"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if !strings.Contains(err.Error(), "MISSING_KEY") {
		t.Errorf("expected MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[log]
level = "chatty"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	cfgPath := writeConfig(t, `[log`)

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	cfgPath := writeConfig(t, ``)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Log.Level)
	}
	if cfg.Database.Path != "/data/sonarrplus/sonarrplus.db" {
		t.Errorf("expected XDG database path, got %s", cfg.Database.Path)
	}
	if cfg.TMDB.Language != "en-US" || cfg.TMDB.RateLimit != 40 || cfg.TMDB.Burst != 20 {
		t.Errorf("unexpected tmdb defaults: %+v", cfg.TMDB)
	}
	if cfg.Sonarr.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Sonarr.Timeout)
	}
	if cfg.Notifications.Window != 24*time.Hour {
		t.Errorf("expected 24h window, got %s", cfg.Notifications.Window)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
[sonarr]
url = "ftp://nas"
`)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sonarr.URL != "ftp://nas" {
		t.Errorf("expected url kept, got %q", cfg.Sonarr.URL)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("OPTIONAL_VAR")
	cfgPath := writeConfig(t, `
[tmdb]
language = "${OPTIONAL_VAR:-de-DE}"
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.Language != "de-DE" {
		t.Errorf("expected language de-DE, got %s", cfg.TMDB.Language)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("defaults should validate, got %v", errs)
	}
}
