package catalog

import (
	"errors"

	"github.com/vmunix/sonarrplus/pkg/sonarr"
)

var (
	// ErrInvalidRecord indicates an upstream record had no usable id or name.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrNoRootFolder indicates the library has no root folder to add shows under.
	ErrNoRootFolder = errors.New("no root folder configured")

	// ErrNoQualityProfile indicates the library has no quality profile.
	ErrNoQualityProfile = errors.New("no quality profile configured")

	// ErrUnidentified indicates a show has no external (TVDB) identifier.
	ErrUnidentified = errors.New("show has no tvdb id")

	// ErrSeasonNotFound indicates a series has no season with the given number.
	ErrSeasonNotFound = sonarr.ErrSeasonNotFound

	// ErrNoEpisodeFile indicates an episode has no file to delete.
	ErrNoEpisodeFile = errors.New("episode has no file")

	// ErrUnknownCategory indicates a discovery category that maps to no endpoint.
	ErrUnknownCategory = errors.New("unknown category")
)
