package usecase

import (
	"context"
	"errors"
	"time"

	"timeflow/internal/event"
	"timeflow/internal/goal"
	"timeflow/internal/goal/repository"
	"timeflow/internal/model"
)

// GoalProgress sums the minutes of events carrying at least one eligible
// tag whose start falls inside the goal's period containing ref.
func (uc *implUseCase) GoalProgress(ctx context.Context, id string, ref time.Time) (goal.Progress, error) {
	g, err := uc.repo.GetOneGoal(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goal.Progress{}, goal.ErrGoalNotFound
		}
		uc.l.Errorf(ctx, "goal.usecase.GoalProgress: %v", err)
		return goal.Progress{}, err
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	start, end := periodWindow(g.TimePeriod, ref.In(loc))

	out, err := uc.events.List(ctx, event.ListEventsInput{From: start, To: end})
	if err != nil {
		uc.l.Errorf(ctx, "goal.usecase.GoalProgress: %v", err)
		return goal.Progress{}, err
	}

	minutes := 0
	eligible := make(map[string]struct{}, len(g.EligibleTagIDs))
	for _, id := range g.EligibleTagIDs {
		eligible[id] = struct{}{}
	}
	for _, ev := range out.Events {
		if hasEligibleTag(ev, eligible) {
			minutes += ev.DurationMinutes
		}
	}

	logged := float64(minutes) / 60
	onTrack := logged >= g.TargetHours
	if g.Comparison == model.ComparisonNoMoreThan {
		onTrack = logged <= g.TargetHours
	}

	percent := 0.0
	if g.TargetHours > 0 {
		percent = logged / g.TargetHours * 100
		if percent > 100 {
			percent = 100
		}
	}

	return goal.Progress{
		Goal:        g,
		PeriodStart: start,
		PeriodEnd:   end,
		LoggedHours: logged,
		TargetHours: g.TargetHours,
		Percent:     percent,
		OnTrack:     onTrack,
	}, nil
}

// periodWindow returns [start, end) of the period containing ref, in ref's
// location. Weeks start Monday.
func periodWindow(period model.TimePeriod, ref time.Time) (time.Time, time.Time) {
	loc := ref.Location()
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)

	switch period {
	case model.PeriodWeekly:
		offset := (int(dayStart.Weekday()) + 6) % 7 // Monday = 0
		start := dayStart.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case model.PeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)
	default:
		return dayStart, dayStart.AddDate(0, 0, 1)
	}
}

func hasEligibleTag(ev model.Event, eligible map[string]struct{}) bool {
	for _, id := range ev.TagIDs {
		if _, ok := eligible[id]; ok {
			return true
		}
	}
	return false
}
