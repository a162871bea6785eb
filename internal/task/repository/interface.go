package repository

import (
	"context"

	"voice-task-assistant/internal/model"
)

// Repository is the data access interface for committed tasks.
type Repository interface {
	// CreateTasks inserts every task in one transaction.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int64, error)
	// UpdateTask returns a zero-value Task when the row does not exist for the user.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTasks(ctx context.Context, opt DeleteTasksOptions) (int64, error)
}
