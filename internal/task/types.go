package task

import (
	"time"

	"timeflow/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title    string
	Deadline *time.Time
	Tags     []string
}

type UpdateTaskInput struct {
	ID    string
	Title string
	// IsCompleted is a pointer so completion can be toggled both ways;
	// nil leaves it unchanged.
	IsCompleted *bool
	Deadline    *time.Time
	Tags        []string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
