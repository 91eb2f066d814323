package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeflow/internal/event"
	"timeflow/internal/goal"
	"timeflow/internal/goal/repository"
	"timeflow/internal/goal/usecase"
	"timeflow/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeGoalRepo struct {
	goals map[string]model.Goal
}

func (f *fakeGoalRepo) CreateGoal(ctx context.Context, opt repository.CreateGoalOptions) (model.Goal, error) {
	return model.Goal{}, nil
}

func (f *fakeGoalRepo) GetOneGoal(ctx context.Context, id string) (model.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return model.Goal{}, repository.ErrNotFound
	}
	return g, nil
}

func (f *fakeGoalRepo) ListGoals(ctx context.Context) ([]model.Goal, error) { return nil, nil }

func (f *fakeGoalRepo) UpdateGoal(ctx context.Context, opt repository.UpdateGoalOptions) (model.Goal, error) {
	return model.Goal{}, repository.ErrNotFound
}

func (f *fakeGoalRepo) DeleteGoal(ctx context.Context, id string) error { return nil }

type fakeEventLister struct {
	events   []model.Event
	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeEventLister) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	f.lastFrom = input.From
	f.lastTo = input.To
	return event.ListEventsOutput{Events: f.events}, nil
}

func TestGoalProgress(t *testing.T) {
	// Wednesday 2024-01-03 in UTC.
	ref := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)

	weeklyGoal := model.Goal{
		ID:             "goal-1",
		Name:           "Deep work",
		TimePeriod:     model.PeriodWeekly,
		TargetHours:    10,
		Comparison:     model.ComparisonAtLeast,
		EligibleTagIDs: []string{"tag-work"},
	}

	t.Run("Goal Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeGoalRepo{goals: map[string]model.Goal{}}, &fakeEventLister{}, "UTC")
		_, err := uc.GoalProgress(context.Background(), "missing", ref)
		if !errors.Is(err, goal.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("Weekly Window Starts Monday", func(t *testing.T) {
		lister := &fakeEventLister{}
		uc := usecase.New(&mockLogger{}, &fakeGoalRepo{goals: map[string]model.Goal{"goal-1": weeklyGoal}}, lister, "UTC")

		p, err := uc.GoalProgress(context.Background(), "goal-1", ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // Monday
		if !p.PeriodStart.Equal(wantStart) {
			t.Errorf("expected period start %v, got %v", wantStart, p.PeriodStart)
		}
		if !p.PeriodEnd.Equal(wantStart.AddDate(0, 0, 7)) {
			t.Errorf("expected period end %v, got %v", wantStart.AddDate(0, 0, 7), p.PeriodEnd)
		}
	})

	t.Run("Sums Only Eligible Events", func(t *testing.T) {
		lister := &fakeEventLister{
			events: []model.Event{
				{DurationMinutes: 120, TagIDs: []string{"tag-work"}},
				{DurationMinutes: 60, TagIDs: []string{"tag-food"}},
				{DurationMinutes: 300, TagIDs: []string{"tag-work", "tag-food"}},
			},
		}
		uc := usecase.New(&mockLogger{}, &fakeGoalRepo{goals: map[string]model.Goal{"goal-1": weeklyGoal}}, lister, "UTC")

		p, err := uc.GoalProgress(context.Background(), "goal-1", ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.LoggedHours != 7 {
			t.Errorf("expected 7 logged hours, got %v", p.LoggedHours)
		}
		if p.Percent != 70 {
			t.Errorf("expected 70 percent, got %v", p.Percent)
		}
		if p.OnTrack {
			t.Errorf("expected at-least goal below target to be off track")
		}
	})

	t.Run("No More Than Goal On Track Under Target", func(t *testing.T) {
		capGoal := weeklyGoal
		capGoal.ID = "goal-2"
		capGoal.Comparison = model.ComparisonNoMoreThan
		capGoal.TargetHours = 5

		lister := &fakeEventLister{
			events: []model.Event{{DurationMinutes: 120, TagIDs: []string{"tag-work"}}},
		}
		uc := usecase.New(&mockLogger{}, &fakeGoalRepo{goals: map[string]model.Goal{"goal-2": capGoal}}, lister, "UTC")

		p, err := uc.GoalProgress(context.Background(), "goal-2", ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.OnTrack {
			t.Errorf("expected no-more-than goal under target to be on track")
		}
	})

	t.Run("Daily Window In Timezone", func(t *testing.T) {
		dailyGoal := weeklyGoal
		dailyGoal.ID = "goal-3"
		dailyGoal.TimePeriod = model.PeriodDaily

		lister := &fakeEventLister{}
		uc := usecase.New(&mockLogger{}, &fakeGoalRepo{goals: map[string]model.Goal{"goal-3": dailyGoal}}, lister, "America/New_York")

		// 03:00 UTC on Jan 4 is still Jan 3 in New York.
		p, err := uc.GoalProgress(context.Background(), "goal-3", time.Date(2024, 1, 4, 3, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ny, _ := time.LoadLocation("America/New_York")
		wantStart := time.Date(2024, 1, 3, 0, 0, 0, 0, ny)
		if !p.PeriodStart.Equal(wantStart) {
			t.Errorf("expected period start %v, got %v", wantStart, p.PeriodStart)
		}
	})
}
