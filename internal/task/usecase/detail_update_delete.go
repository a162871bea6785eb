package usecase

import (
	"context"
	"strings"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository"
)

// Detail retrieves a single task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if sc.UserID == "" {
		return model.Task{}, task.ErrNoUser
	}

	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	opt := toUpdateOptions(existing)

	if input.Title != nil {
		opt.Title = strings.TrimSpace(*input.Title)
		if opt.Title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return model.Task{}, task.ErrInvalidPriority
		}
		opt.Priority = *input.Priority
	}
	if input.Category != nil {
		opt.Category = strings.TrimSpace(*input.Category)
	}
	if input.Tags != nil {
		opt.Tags = input.Tags
	}
	if input.Status != nil {
		if err := uc.applyStatus(&opt, *input.Status); err != nil {
			return model.Task{}, err
		}
	}

	dueChanged := false
	switch {
	case input.ClearDue:
		dueChanged = existing.DueDate != nil
		opt.DueDate = nil
	case input.DueDate != nil:
		dueChanged = existing.DueDate == nil || !existing.DueDate.Equal(*input.DueDate)
		due := *input.DueDate
		opt.DueDate = &due
	}
	if dueChanged {
		uc.tryDeleteCalendarEvent(ctx, existing.CalendarEventID)
		opt.CalendarEventID = uc.tryCreateCalendarEvent(ctx, repository.CreateTaskOptions{
			ID:          opt.ID,
			UserID:      opt.UserID,
			Title:       opt.Title,
			Description: opt.Description,
			DueDate:     opt.DueDate,
			Priority:    opt.Priority,
			Category:    opt.Category,
		})
	}

	return uc.save(ctx, "uc.Update", opt)
}

// ToggleComplete flips a task between pending and completed.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return model.Task{}, err
	}

	next := model.StatusCompleted
	if existing.IsCompleted() {
		next = model.StatusPending
	}

	opt := toUpdateOptions(existing)
	if err := uc.applyStatus(&opt, next); err != nil {
		return model.Task{}, err
	}
	return uc.save(ctx, "uc.ToggleComplete", opt)
}

// Delete removes a task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return err
	}

	n, err := uc.repo.DeleteTasks(ctx, repository.DeleteTasksOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTasks: %v", err)
		return err
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}

	uc.tryDeleteCalendarEvent(ctx, existing.CalendarEventID)
	return nil
}

func (uc *implUseCase) save(ctx context.Context, caller string, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateTask: %v", caller, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// applyStatus sets the status and keeps CompletedAt consistent with it.
func (uc *implUseCase) applyStatus(opt *repository.UpdateTaskOptions, status model.Status) error {
	switch status {
	case model.StatusCompleted:
		if opt.Status != model.StatusCompleted {
			now := uc.clock()
			opt.CompletedAt = &now
		}
	case model.StatusPending:
		opt.CompletedAt = nil
	default:
		return task.ErrInvalidStatus
	}
	opt.Status = status
	return nil
}

func toUpdateOptions(t model.Task) repository.UpdateTaskOptions {
	return repository.UpdateTaskOptions{
		ID:              t.ID,
		UserID:          t.UserID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         t.DueDate,
		Priority:        t.Priority,
		Category:        t.Category,
		Tags:            t.Tags,
		Status:          t.Status,
		CompletedAt:     t.CompletedAt,
		CalendarEventID: t.CalendarEventID,
	}
}
