package event

import (
	"time"

	"timeflow/internal/model"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TagIDs      []string
}

type ListEventsInput struct {
	// Optional window filter. Zero values mean unbounded.
	From time.Time
	To   time.Time

	// Optional paging. Zero Limit means no cap.
	Limit  int
	Offset int
}

type UpdateEventInput struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TagIDs      []string
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event model.Event
}

type CreateBatchOutput struct {
	Events []model.Event
}

type ListEventsOutput struct {
	Events []model.Event
}

type DetailEventOutput struct {
	Event model.Event
}

type UpdateEventOutput struct {
	Event model.Event
}

// LoggedEvent is the read-model the resolution engine's lookup tool sees:
// just enough to anchor relative phrases against history.
type LoggedEvent struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}
