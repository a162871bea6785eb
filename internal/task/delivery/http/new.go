package http

import (
	"time"

	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the task domain.
// dates resolves due_date values given as relative phrases ("tomorrow", "in 3 days").
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
