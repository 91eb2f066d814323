package model

import "time"

// Task is a to-do item tracked alongside logged time. Unlike events, tasks
// carry tag names directly, the same vocabulary the resolution engine uses.
type Task struct {
	ID          string
	Title       string
	IsCompleted bool
	Deadline    *time.Time
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
