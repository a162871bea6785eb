package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"voice-task-assistant/internal/assistant/repository"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/pkg/log"
)

const keyPrefix = "assistant:session:"

type implRepository struct {
	client goredis.UniversalClient
	ttl    time.Duration
	l      log.Logger
}

// New creates a redis-backed session store so sessions survive restarts and
// are shared between API replicas. Every save refreshes the ttl.
func New(client goredis.UniversalClient, ttl time.Duration, l log.Logger) repository.SessionRepository {
	if client == nil {
		panic("assistant/repository/redis: client is required")
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func (r *implRepository) Get(ctx context.Context, userID string) (*conversation.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "assistant/repository/redis.Get: %v", err)
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decodeSession(data)
}

func (r *implRepository) Save(ctx context.Context, userID string, sess *conversation.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(userID), data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "assistant/repository/redis.Save: %v", err)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		r.l.Errorf(ctx, "assistant/repository/redis.Delete: %v", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionKey(userID string) string {
	return keyPrefix + userID
}

func decodeSession(data []byte) (*conversation.Session, error) {
	var sess conversation.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}
