package task

import "time"

// Task is a to-do item tracked alongside the calendar service.
type Task struct {
	ID          string
	Title       string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
