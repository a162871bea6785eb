package task

import (
	"time"

	"voice-task-assistant/internal/model"
)

// CreateInput is the input for manual task creation.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority
	Category    string
	Tags        []string
}

// CreateFromDraftsInput carries drafts confirmed in a conversation.
type CreateFromDraftsInput struct {
	Drafts []model.Draft
	Origin model.Origin
}

// UpdateInput is a partial update: nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
	Priority    *model.Priority
	Category    *string
	Tags        []string
	Status      *model.Status
}

type ListInput struct {
	Status   model.Status
	Category string
	Limit    int
	Offset   int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int64
	Limit  int
	Offset int
}

// Stats summarises a user's tasks. Overdue counts pending tasks due before
// today; Today counts tasks due today regardless of status.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
	Today     int
}
