package usecase

import (
	"context"

	"timeflow/internal/event/repository"
	"timeflow/pkg/gcalendar"
	pkgLog "timeflow/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client the event
// domain needs. Nil means mirroring is disabled.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   CalendarClient
	calendarID string
	timezone   string
}

// New creates a new event UseCase instance. The returned value also
// implements event.Lookup for the resolution engine.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
