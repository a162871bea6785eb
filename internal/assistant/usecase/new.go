package usecase

import (
	"github.com/prometheus/client_golang/prometheus"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/assistant/repository"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/task"
	pkgLog "voice-task-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	engine   *conversation.Engine
	sessions repository.SessionRepository
	tasks    task.UseCase
	locks    *userLocks
	metrics  *Metrics
}

// Option configures the use case.
type Option func(*implUseCase)

// WithMetrics records conversation counters into m.
func WithMetrics(m *Metrics) Option {
	return func(uc *implUseCase) {
		uc.metrics = m
	}
}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, engine *conversation.Engine, sessions repository.SessionRepository, tasks task.UseCase, opts ...Option) assistant.UseCase {
	uc := &implUseCase{
		l:        l,
		engine:   engine,
		sessions: sessions,
		tasks:    tasks,
		locks:    newUserLocks(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.metrics == nil {
		uc.metrics = NewMetrics(prometheus.NewRegistry())
	}
	return uc
}
