package repository

import "errors"

// ErrNotFound indicates no task matched the given ID.
var ErrNotFound = errors.New("task not found in store")
