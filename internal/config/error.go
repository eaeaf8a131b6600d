package config

import (
	"fmt"
	"strings"
)

// ConfigError reports every problem found in one config file.
type ConfigError struct {
	Path    string
	Missing []string // "VAR", or "VAR: message" for ${VAR:?message}
	Errors  []string // "section.key: problem"
}

// HasErrors reports whether anything was found.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	name := e.Path
	if name == "" {
		name = "config"
	}
	fmt.Fprintf(&b, "%s: invalid configuration", name)
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "\n  - missing environment variable %s", m)
	}
	for _, msg := range e.Errors {
		fmt.Fprintf(&b, "\n  - %s", msg)
	}
	return b.String()
}
