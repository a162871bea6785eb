package usecase

import (
	"time"

	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository"
	"voice-task-assistant/pkg/datemath"
	pkgLog "voice-task-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar task.Calendar
	dateMath *datemath.Parser
	clock    func() time.Time
}

// Option configures the use case.
type Option func(*implUseCase)

// WithCalendar mirrors dated tasks into cal. Calendar failures never fail the task operation.
func WithCalendar(cal task.Calendar) Option {
	return func(uc *implUseCase) {
		uc.calendar = cal
	}
}

// WithClock overrides the clock used for completion times and stats.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.clock = now
	}
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, opts ...Option) task.UseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
