package usecase

import (
	"context"
	"errors"
	"strings"

	"timeflow/internal/event"
	"timeflow/internal/event/repository"
	"timeflow/pkg/gcalendar"
)

func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	if err := validateInput(input); err != nil {
		return event.CreateEventOutput{}, err
	}

	// Mirror first so the stored event can carry the calendar deep link.
	// Mirroring is best-effort: a calendar failure never blocks logging.
	calendarLink := uc.mirrorToCalendar(ctx, input)

	created, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		TagIDs:       input.TagIDs,
		CalendarLink: calendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create: %v", err)
		return event.CreateEventOutput{}, err
	}

	return event.CreateEventOutput{Event: created}, nil
}

func (uc *implUseCase) CreateBatch(ctx context.Context, inputs []event.CreateEventInput) (event.CreateBatchOutput, error) {
	// Validate everything up front so a batch is all-or-nothing before any
	// write happens.
	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return event.CreateBatchOutput{}, err
		}
	}

	out := event.CreateBatchOutput{}
	for _, input := range inputs {
		created, err := uc.Create(ctx, input)
		if err != nil {
			return event.CreateBatchOutput{}, err
		}
		out.Events = append(out.Events, created.Event)
	}

	return out, nil
}

func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return event.ListEventsOutput{}, event.ErrInvalidRange
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{Events: events}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (event.DetailEventOutput, error) {
	ev, err := uc.repo.GetOneEvent(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.DetailEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event.usecase.Detail: %v", err)
		return event.DetailEventOutput{}, err
	}

	return event.DetailEventOutput{Event: ev}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input event.UpdateEventInput) (event.UpdateEventOutput, error) {
	cur, err := uc.repo.GetOneEvent(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.UpdateEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event.usecase.Update: %v", err)
		return event.UpdateEventOutput{}, err
	}

	// Validate the merged span before anything is written. A request that
	// changes only one endpoint must not leave an inverted span behind.
	start, end := cur.StartTime, cur.EndTime
	if !input.StartTime.IsZero() {
		start = input.StartTime
	}
	if !input.EndTime.IsZero() {
		end = input.EndTime
	}
	if !end.After(start) {
		return event.UpdateEventOutput{}, event.ErrInvalidSpan
	}

	updated, err := uc.repo.UpdateEvent(ctx, repository.UpdateEventOptions{
		ID:          input.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		TagIDs:      input.TagIDs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.UpdateEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event.usecase.Update: %v", err)
		return event.UpdateEventOutput{}, err
	}

	return event.UpdateEventOutput{Event: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event.usecase.Delete: %v", err)
		return err
	}

	return nil
}

// mirrorToCalendar pushes the event to Google Calendar and returns the deep
// link, or "" when mirroring is disabled or fails.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, input event.CreateEventInput) string {
	if uc.calendar == nil {
		return ""
	}

	mirrored, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     strings.TrimSpace(input.Title),
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.mirrorToCalendar: %v", err)
		return ""
	}

	return mirrored.HtmlLink
}

func validateInput(input event.CreateEventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return event.ErrEmptyTitle
	}
	if !input.EndTime.After(input.StartTime) {
		return event.ErrInvalidSpan
	}
	return nil
}
