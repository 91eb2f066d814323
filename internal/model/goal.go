package model

import "time"

// TimePeriod is the recurrence window a goal is measured over.
type TimePeriod string

const (
	PeriodDaily   TimePeriod = "daily"
	PeriodWeekly  TimePeriod = "weekly"
	PeriodMonthly TimePeriod = "monthly"
)

// Comparison is the direction a goal is satisfied in.
type Comparison string

const (
	ComparisonAtLeast    Comparison = "at-least"
	ComparisonNoMoreThan Comparison = "no-more-than"
)

// Goal is a recurring target: spend at-least/no-more-than TargetHours per
// period on events carrying any of the eligible tags.
type Goal struct {
	ID             string
	Name           string
	TimePeriod     TimePeriod
	TargetHours    float64
	Comparison     Comparison
	EligibleTagIDs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
