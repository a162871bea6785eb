package assistant

import (
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
)

// Reply is what the assistant says back after a turn.
type Reply struct {
	Message         string
	State           conversation.State
	ShowTaskPreview bool
	TaskDraft       *model.Draft
	MultipleTasks   []model.Draft
	ClearDraft      bool

	// SavedTasks holds the tasks committed during this turn.
	SavedTasks []model.Task
}
