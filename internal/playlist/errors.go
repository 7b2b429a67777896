package playlist

import "errors"

var (
	// ErrPlaylistNotFound is returned when an operation names an unknown playlist
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrPlaylistExists is returned by Create when the name is already taken
	ErrPlaylistExists = errors.New("playlist already exists")

	// ErrMalformedFile wraps decode failures of the playlists file
	ErrMalformedFile = errors.New("malformed playlists file")

	// ErrSaveLocked is returned by Save when the file on disk could not be
	// loaded and was not moved aside
	ErrSaveLocked = errors.New("saving disabled to protect the existing playlists file")
)
