package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/repository/sqlite"
	"voice-task-assistant/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar recording created and deleted events
type mockCalendar struct {
	createErr error
	created   []string
	deleted   []string
}

func (m *mockCalendar) CreateTaskEvent(ctx context.Context, t model.Task) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	id := "evt-" + t.ID
	m.created = append(m.created, id)
	return id, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

var errCalendarDown = errors.New("calendar down")

// Wednesday, May 1, 2024 10:00 UTC
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func day(m time.Month, d int) *time.Time {
	t := time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestUseCase(t *testing.T, opts ...Option) task.UseCase {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	l := &mockLogger{}
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(l, sqlite.New(db, l), dates, opts...)
}
