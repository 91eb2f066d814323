package event

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEmptyTitle    = errors.New("event title is required")
	ErrInvalidSpan   = errors.New("event end time must be after start time")
	ErrInvalidRange  = errors.New("range end must not be before range start")
)
