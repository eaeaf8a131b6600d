package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	// TMDB validation
	if c.TMDB.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.rate_limit: must not be negative, got %g", c.TMDB.RateLimit))
	}
	if c.TMDB.Burst < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.burst: must not be negative, got %d", c.TMDB.Burst))
	}
	if c.TMDB.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.cache_ttl: must not be negative, got %s", c.TMDB.CacheTTL))
	}

	// Sonarr validation
	if c.Sonarr.URL != "" {
		u, err := url.Parse(c.Sonarr.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("sonarr.url: must be an http(s) URL, got %q", c.Sonarr.URL))
		}
		if c.Sonarr.APIKey == "" {
			errs = append(errs, "sonarr.api_key: required when sonarr.url is set")
		}
	} else if c.Sonarr.APIKey != "" {
		errs = append(errs, "sonarr.url: required when sonarr.api_key is set")
	}
	if c.Sonarr.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("sonarr.timeout: must not be negative, got %s", c.Sonarr.Timeout))
	}

	if c.Notifications.Window < 0 {
		errs = append(errs, fmt.Sprintf("notifications.window: must not be negative, got %s", c.Notifications.Window))
	}

	return errs
}
