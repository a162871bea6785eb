package repository

import (
	"context"

	"voice-task-assistant/internal/conversation"
)

// SessionRepository stores one conversation session per user.
type SessionRepository interface {
	// Get returns nil, nil when the user has no live session.
	Get(ctx context.Context, userID string) (*conversation.Session, error)
	Save(ctx context.Context, userID string, sess *conversation.Session) error
	Delete(ctx context.Context, userID string) error
}
