package repository

import "errors"

var (
	// ErrNotFound indicates the requested key is not stored.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt indicates a stored value that cannot be decoded.
	ErrCorrupt = errors.New("corrupt stored value")
)
