package repository

import (
	"context"

	"timeflow/internal/model"
)

// Repository defines the persistence interface for goals.
type Repository interface {
	CreateGoal(ctx context.Context, opt CreateGoalOptions) (model.Goal, error)
	GetOneGoal(ctx context.Context, id string) (model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, opt UpdateGoalOptions) (model.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
}
