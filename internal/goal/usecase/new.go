package usecase

import (
	"context"

	"timeflow/internal/event"
	"timeflow/internal/goal"
	"timeflow/internal/goal/repository"
	pkgLog "timeflow/pkg/log"
)

// EventLister is the slice of the event domain progress measurement needs.
type EventLister interface {
	List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	events   EventLister
	timezone string
}

// New creates a new goal UseCase instance. Period boundaries are computed
// in the given IANA timezone.
func New(l pkgLog.Logger, repo repository.Repository, events EventLister, timezone string) goal.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		events:   events,
		timezone: timezone,
	}
}
