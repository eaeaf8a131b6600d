// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log           LogConfig           `toml:"log"`
	Database      DatabaseConfig      `toml:"database"`
	TMDB          TMDBConfig          `toml:"tmdb"`
	Sonarr        SonarrConfig        `toml:"sonarr"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type TMDBConfig struct {
	APIKey    string        `toml:"api_key"`
	Language  string        `toml:"language"`
	RateLimit float64       `toml:"rate_limit"` // requests per second
	Burst     int           `toml:"burst"`
	CacheTTL  time.Duration `toml:"cache_ttl"`
	BaseURL   string        `toml:"base_url"` // empty means api.themoviedb.org
}

// SonarrConfig holds optional bootstrap credentials. Credentials saved by
// `sonarrplus connect` take precedence.
type SonarrConfig struct {
	URL     string        `toml:"url"`
	APIKey  string        `toml:"api_key"`
	Timeout time.Duration `toml:"timeout"`
}

type NotificationsConfig struct {
	Window time.Duration `toml:"window"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, failing
// only on unreadable files, bad TOML or unresolved environment variables.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.TMDB.Language == "" {
		c.TMDB.Language = "en-US"
	}
	if c.TMDB.RateLimit == 0 {
		c.TMDB.RateLimit = 40
	}
	if c.TMDB.Burst == 0 {
		c.TMDB.Burst = 20
	}
	if c.TMDB.CacheTTL == 0 {
		c.TMDB.CacheTTL = 10 * time.Minute
	}
	if c.Sonarr.Timeout == 0 {
		c.Sonarr.Timeout = 30 * time.Second
	}
	if c.Notifications.Window == 0 {
		c.Notifications.Window = 24 * time.Hour
	}
}

// DefaultDatabasePath returns the XDG-compliant default database path.
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./data/sonarrplus.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sonarrplus", "sonarrplus.db")
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references. Unresolved references
// are left in place and reported in missing; a ${VAR:?message} reference
// is reported as "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
