package resolver

import "errors"

var (
	ErrEmptyInput       = errors.New("text is required")
	ErrInvalidTimezone  = errors.New("timezone is not a valid IANA zone name")
	ErrToolLoopExceeded = errors.New("extraction exceeded the tool call limit")
	ErrSchemaViolation  = errors.New("extraction output does not conform to the result schema")
	ErrDegenerateSpan   = errors.New("resolved event has a zero or negative span")
)
