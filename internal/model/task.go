package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the completion state of a committed task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Origin records how a task entered the system.
type Origin string

const (
	OriginVoice  Origin = "voice"
	OriginManual Origin = "manual"
	OriginImport Origin = "import"
)

// Draft is an in-progress task that has not been confirmed yet.
// ID is assigned when the draft is created so later turns refer to the same draft.
type Draft struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Committable reports whether the draft can be saved.
func (d Draft) Committable() bool {
	return d.Title != ""
}

// Task is a committed task owned by a user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Category    string
	Tags        []string
	Status      Status
	CreatedBy   Origin
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CalendarEventID links the task to its calendar event, if one was created.
	CalendarEventID string
}

// IsCompleted reports whether the task has been marked done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
