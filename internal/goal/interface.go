package goal

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the goal domain.
type UseCase interface {
	Create(ctx context.Context, input CreateGoalInput) (CreateGoalOutput, error)
	List(ctx context.Context) (ListGoalsOutput, error)
	Detail(ctx context.Context, id string) (DetailGoalOutput, error)
	Update(ctx context.Context, input UpdateGoalInput) (UpdateGoalOutput, error)
	Delete(ctx context.Context, id string) error

	// GoalProgress measures the goal's period containing the reference
	// instant against the events logged in that period.
	GoalProgress(ctx context.Context, id string, ref time.Time) (Progress, error)
}
