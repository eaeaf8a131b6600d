package sonarr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sonarr package.
var (
	// ErrNotConfigured is returned by every call made before a successful
	// Authenticate, or after Disconnect.
	ErrNotConfigured = errors.New("missing configuration: server url or api key not set")

	// ErrInvalidURL is returned when the base URL cannot form a request URL.
	ErrInvalidURL = errors.New("invalid server url")

	// ErrUnavailable indicates Sonarr could not be reached (DNS, TLS, refused, timeout).
	ErrUnavailable = errors.New("sonarr unavailable")

	// ErrInvalidAPIKey indicates the status probe or a request was rejected.
	ErrInvalidAPIKey = errors.New("invalid api key or server")

	// ErrUnexpectedResponse indicates the body did not match the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSeasonNotFound is returned when a series has no season with the given number.
	ErrSeasonNotFound = errors.New("season not found")
)

// StatusError is returned when Sonarr answers with a status code the
// operation does not accept.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sonarr %s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("sonarr %s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
