package goal

import "errors"

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrEmptyName         = errors.New("goal name is required")
	ErrInvalidPeriod     = errors.New("time period must be daily, weekly or monthly")
	ErrInvalidComparison = errors.New("comparison must be at-least or no-more-than")
	ErrInvalidTarget     = errors.New("target hours must be positive")
	ErrNoEligibleTags    = errors.New("goal needs at least one eligible tag")
)
