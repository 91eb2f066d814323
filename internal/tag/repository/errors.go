package repository

import "errors"

var (
	// ErrNotFound indicates no tag matched the given filters.
	ErrNotFound = errors.New("tag not found in store")

	// ErrDuplicateName indicates the unique name constraint was violated.
	ErrDuplicateName = errors.New("tag name already exists in store")
)
