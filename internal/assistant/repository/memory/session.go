package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-assistant/internal/assistant/repository"
	"voice-task-assistant/internal/conversation"
)

type implRepository struct {
	sessions *expirable.LRU[string, *conversation.Session]
}

// New creates an in-process session store. Idle sessions expire after ttl and
// the least recently used session is evicted beyond maxSessions.
func New(maxSessions int, ttl time.Duration) repository.SessionRepository {
	return &implRepository{
		sessions: expirable.NewLRU[string, *conversation.Session](maxSessions, nil, ttl),
	}
}

func (r *implRepository) Get(_ context.Context, userID string) (*conversation.Session, error) {
	sess, ok := r.sessions.Get(userID)
	if !ok {
		return nil, nil
	}
	return sess.Clone(), nil
}

func (r *implRepository) Save(_ context.Context, userID string, sess *conversation.Session) error {
	r.sessions.Add(userID, sess.Clone())
	return nil
}

func (r *implRepository) Delete(_ context.Context, userID string) error {
	r.sessions.Remove(userID)
	return nil
}
