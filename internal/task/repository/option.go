package repository

import (
	"time"

	"voice-task-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
// ID is generated when empty.
type CreateTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        model.Priority
	Category        string
	Tags            []string
	CreatedBy       model.Origin
	CalendarEventID string
}

// GetOneTaskOptions filters a single task. Both fields are required.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters.
// A zero Limit returns every matching row.
type ListTasksOptions struct {
	UserID   string
	Status   model.Status
	Category string
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateTaskOptions replaces every mutable column of the task.
type UpdateTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        model.Priority
	Category        string
	Tags            []string
	Status          model.Status
	CompletedAt     *time.Time
	CalendarEventID string
}

// DeleteTasksOptions deletes one task when ID is set, otherwise all tasks of the user.
type DeleteTasksOptions struct {
	ID     string
	UserID string
}
