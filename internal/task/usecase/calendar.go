package usecase

import (
	"context"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository"
)

// tryCreateCalendarEvent returns the event id, or "" when there is no calendar,
// no due date, or the calendar call failed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, opt repository.CreateTaskOptions) string {
	if uc.calendar == nil || opt.DueDate == nil {
		return ""
	}

	id, err := uc.calendar.CreateTaskEvent(ctx, model.Task{
		ID:          opt.ID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", opt.Title, err)
		return ""
	}
	return id
}

func (uc *implUseCase) tryDeleteCalendarEvent(ctx context.Context, eventID string) {
	if uc.calendar == nil || eventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, eventID); err != nil {
		uc.l.Warnf(ctx, "calendar event %s deletion failed (non-fatal): %v", eventID, err)
	}
}
