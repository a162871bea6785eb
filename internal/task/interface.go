package task

import (
	"context"

	"voice-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation is scoped to sc.UserID; tasks of other users are invisible.
type UseCase interface {
	// Create saves one task. Used for manual creation.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// CreateFromDrafts saves confirmed drafts in a single transaction: either all are stored or none.
	CreateFromDrafts(ctx context.Context, sc model.Scope, input CreateFromDraftsInput) ([]model.Task, error)

	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Update applies a partial update. Returns ErrTaskNotFound when the task does not exist for this user.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleComplete flips the task between pending and completed.
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Clear removes every task of the user and returns how many were deleted.
	Clear(ctx context.Context, sc model.Scope) (int64, error)

	Stats(ctx context.Context, sc model.Scope) (Stats, error)
}

// Calendar mirrors dated tasks into an external calendar.
type Calendar interface {
	CreateTaskEvent(ctx context.Context, t model.Task) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
