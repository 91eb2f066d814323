package goal

import (
	"time"

	"timeflow/internal/model"
)

// --- UseCase Inputs ---

type CreateGoalInput struct {
	Name           string
	TimePeriod     model.TimePeriod
	TargetHours    float64
	Comparison     model.Comparison
	EligibleTagIDs []string
}

type UpdateGoalInput struct {
	ID             string
	Name           string
	TimePeriod     model.TimePeriod
	TargetHours    float64
	Comparison     model.Comparison
	EligibleTagIDs []string
}

// --- UseCase Outputs ---

type CreateGoalOutput struct {
	Goal model.Goal
}

type ListGoalsOutput struct {
	Goals []model.Goal
}

type DetailGoalOutput struct {
	Goal model.Goal
}

type UpdateGoalOutput struct {
	Goal model.Goal
}

// Progress reports how a goal stands inside the period containing the
// reference instant.
type Progress struct {
	Goal        model.Goal
	PeriodStart time.Time
	PeriodEnd   time.Time
	LoggedHours float64
	TargetHours float64
	// Percent is logged over target, capped at 100.
	Percent float64
	OnTrack bool
}
