package main

import (
	"errors"

	"github.com/vmunix/sonarrplus/internal/catalog"
	"github.com/vmunix/sonarrplus/internal/config"
	"github.com/vmunix/sonarrplus/pkg/sonarr"
	"github.com/vmunix/sonarrplus/pkg/tmdb"
)

const notConnectedMessage = "not connected, run 'sonarrplus connect <url> <api-key>'"

// userMessage turns an operation error into the line shown to the user.
// Known failure kinds get a fixed headline followed by the detail.
func userMessage(err error) string {
	var statusErr *sonarr.StatusError
	var cfgErr *config.ConfigError

	headline := ""
	switch {
	case errors.Is(err, sonarr.ErrNotConfigured):
		return notConnectedMessage
	case errors.As(err, &cfgErr):
		return cfgErr.Error()
	case errors.Is(err, sonarr.ErrUnavailable), errors.Is(err, tmdb.ErrUnavailable):
		headline = "network error"
	case errors.Is(err, sonarr.ErrInvalidAPIKey), errors.Is(err, tmdb.ErrUnauthorized):
		headline = "invalid API key or server"
	case errors.Is(err, sonarr.ErrUnexpectedResponse), errors.Is(err, tmdb.ErrUnexpectedResponse),
		errors.As(err, &statusErr):
		headline = "unexpected response from server"
	case errors.Is(err, catalog.ErrNoRootFolder):
		headline = "no root folder configured in Sonarr"
	case errors.Is(err, catalog.ErrUnidentified):
		headline = "show has no TVDB id"
	default:
		return err.Error()
	}
	return headline + " (" + err.Error() + ")"
}
