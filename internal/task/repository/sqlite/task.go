package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voice-task-assistant/internal/model"
	repo "voice-task-assistant/internal/task/repository"
)

// CreateTasks inserts all tasks in one transaction and returns them as stored.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	rows := make([]taskRow, len(opts))
	for i, opt := range opts {
		id := opt.ID
		if id == "" {
			id = uuid.NewString()
		}
		rows[i] = taskRow{
			ID:              id,
			UserID:          opt.UserID,
			Title:           opt.Title,
			Description:     opt.Description,
			DueDate:         opt.DueDate,
			Priority:        string(opt.Priority),
			Category:        opt.Category,
			Tags:            opt.Tags,
			Status:          string(model.StatusPending),
			CreatedBy:       string(opt.CreatedBy),
			CalendarEventID: opt.CalendarEventID,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return toModels(rows), nil
}

// GetOneTask retrieves a task by ID for its owner.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Scopes(byOwner(opt.UserID, opt.ID)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListTasks returns a page of tasks and the total count before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&taskRow{}).Scopes(listFilter(opt)).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var rows []taskRow
	if err := db.Scopes(listFilter(opt), page(opt)).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return toModels(rows), total, nil
}

// UpdateTask overwrites the mutable columns of a task.
// Returns zero-value Task when the task does not exist for the user.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	var row taskRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(byOwner(opt.UserID, opt.ID)).Take(&row).Error; err != nil {
			return err
		}

		row.Title = opt.Title
		row.Description = opt.Description
		row.DueDate = opt.DueDate
		row.Priority = string(opt.Priority)
		row.Category = opt.Category
		row.Tags = opt.Tags
		row.Status = string(opt.Status)
		row.CompletedAt = opt.CompletedAt
		row.CalendarEventID = opt.CalendarEventID

		return tx.Save(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteTasks removes one task, or every task of the user when opt.ID is empty.
func (r *implRepository) DeleteTasks(ctx context.Context, opt repo.DeleteTasksOptions) (int64, error) {
	res := r.db.WithContext(ctx).Scopes(byOwner(opt.UserID, opt.ID)).Delete(&taskRow{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTasks"), res.Error)
		return 0, repo.ErrFailedToDelete
	}
	return res.RowsAffected, nil
}
