package assistant

import (
	"context"

	"voice-task-assistant/internal/model"
)

// UseCase runs the task-creation conversation for each user and commits
// confirmed drafts to the task store.
type UseCase interface {
	// Respond processes one utterance. Conversation problems are reported
	// in Reply.Message; the only error is ErrNoUser.
	Respond(ctx context.Context, sc model.Scope, utterance string) (Reply, error)

	// Current returns the pending conversation state without advancing it.
	Current(ctx context.Context, sc model.Scope) (Reply, error)

	// Reset discards the user's session.
	Reset(ctx context.Context, sc model.Scope) error
}
