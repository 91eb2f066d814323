package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title    string
	Deadline *time.Time
	Tags     []string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Empty / nil fields are left unchanged.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	IsCompleted *bool
	Deadline    *time.Time
	Tags        []string
}
