package repository

import (
	"context"

	"timeflow/internal/model"
)

// Repository defines the persistence interface for events.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, id string) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
