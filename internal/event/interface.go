package event

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	CreateBatch(ctx context.Context, inputs []CreateEventInput) (CreateBatchOutput, error)
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, id string) (DetailEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, id string) error
}

// Lookup is the read-only gateway the resolution engine queries for
// previously logged events. Implementations must return events whose start
// time falls inside [from, to], ordered by start time ascending.
type Lookup interface {
	LoggedEvents(ctx context.Context, from, to time.Time) ([]LoggedEvent, error)
}
