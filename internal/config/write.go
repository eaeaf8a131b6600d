package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig []byte

// WriteDefault writes the commented template to path, creating parent
// directories. The file may end up holding API keys, so it is 0600.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Encode writes c as TOML with API keys masked.
func (c *Config) Encode(w io.Writer) error {
	masked := *c
	masked.TMDB.APIKey = mask(c.TMDB.APIKey)
	masked.Sonarr.APIKey = mask(c.Sonarr.APIKey)
	return toml.NewEncoder(w).Encode(masked)
}

// mask keeps the last four characters of a secret.
func mask(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) <= 4:
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
