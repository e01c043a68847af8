package domain

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotFound           = errors.New("not found")

	// ErrEmptyWatchlist is returned by the pickers when the room has no
	// want-to-watch entries to choose from.
	ErrEmptyWatchlist = errors.New("want-to-watch list is empty")
)
