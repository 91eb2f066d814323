package repository

import "timeflow/internal/model"

type CreateGoalOptions struct {
	Name           string
	TimePeriod     model.TimePeriod
	TargetHours    float64
	Comparison     model.Comparison
	EligibleTagIDs []string
}

type UpdateGoalOptions struct {
	ID             string
	Name           string
	TimePeriod     model.TimePeriod
	TargetHours    float64
	Comparison     model.Comparison
	EligibleTagIDs []string
}
