package usecase

import (
	"context"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository"
)

// List returns a page of the user's tasks, newest first. A zero Limit lists everything.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if sc.UserID == "" {
		return task.ListOutput{}, task.ErrNoUser
	}
	switch input.Status {
	case "", model.StatusPending, model.StatusCompleted:
	default:
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Category: input.Category,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Clear deletes every task of the user.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) (int64, error) {
	if sc.UserID == "" {
		return 0, task.ErrNoUser
	}

	var eventIDs []string
	if uc.calendar != nil {
		tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Clear ListTasks: %v", err)
			return 0, err
		}
		for _, t := range tasks {
			if t.CalendarEventID != "" {
				eventIDs = append(eventIDs, t.CalendarEventID)
			}
		}
	}

	n, err := uc.repo.DeleteTasks(ctx, repository.DeleteTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Clear DeleteTasks: %v", err)
		return 0, err
	}

	for _, id := range eventIDs {
		uc.tryDeleteCalendarEvent(ctx, id)
	}

	uc.l.Infof(ctx, "uc.Clear: user=%s deleted=%d", sc.UserID, n)
	return n, nil
}

// Stats counts the user's tasks by state relative to today in the configured timezone.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.Stats, error) {
	if sc.UserID == "" {
		return task.Stats{}, task.ErrNoUser
	}

	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return task.Stats{}, err
	}

	today := uc.dateMath.StartOfDay(uc.clock())

	var s task.Stats
	for _, t := range tasks {
		s.Total++
		if t.IsCompleted() {
			s.Completed++
		} else {
			s.Pending++
		}
		if t.DueDate == nil {
			continue
		}
		dueDay := uc.dateMath.StartOfDay(*t.DueDate)
		if dueDay.Equal(today) {
			s.Today++
		}
		if !t.IsCompleted() && t.DueDate.Before(today) {
			s.Overdue++
		}
	}
	return s, nil
}
