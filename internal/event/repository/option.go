package repository

import "time"

type CreateEventOptions struct {
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	TagIDs       []string
	CalendarLink string
}

type ListEventsOptions struct {
	// Window filter on start time, inclusive on both ends.
	// Zero values mean unbounded.
	From time.Time
	To   time.Time

	// Paging. Zero Limit means no cap.
	Limit  int
	Offset int
}

type UpdateEventOptions struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TagIDs      []string
}
