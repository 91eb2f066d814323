package model

import "time"

// Event is a logged time event: an activity with an absolute start and end
// instant and a set of tag references.
type Event struct {
	ID              string
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int // round((EndTime - StartTime) / minute)
	TagIDs          []string
	CalendarLink    string // deep link to the mirrored Google Calendar event, if any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration recomputes the span length in whole minutes.
func (e Event) Duration() int {
	return int(e.EndTime.Sub(e.StartTime).Round(time.Minute) / time.Minute)
}
