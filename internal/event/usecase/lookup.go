package usecase

import (
	"context"
	"time"

	"timeflow/internal/event"
	"timeflow/internal/event/repository"
)

// LoggedEvents implements event.Lookup for the resolution engine. A store
// failure degrades to an empty list rather than aborting the resolution:
// the engine can still answer from the text alone, just without anchors.
func (uc *implUseCase) LoggedEvents(ctx context.Context, from, to time.Time) ([]event.LoggedEvent, error) {
	if to.Before(from) {
		return nil, event.ErrInvalidRange
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{From: from, To: to})
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.LoggedEvents: %v", err)
		return []event.LoggedEvent{}, nil
	}

	logged := make([]event.LoggedEvent, 0, len(events))
	for _, ev := range events {
		logged = append(logged, event.LoggedEvent{
			Title:     ev.Title,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		})
	}

	return logged, nil
}
