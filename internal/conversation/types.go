package conversation

import (
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/taskparser"
)

// State is a step of the task-creation dialogue.
type State string

const (
	StateGreeting       State = "greeting"
	StateCollectingInfo State = "collecting_info"
	StateConfirming     State = "confirming"
	StateEditing        State = "editing"
)

// Session is the mutable dialogue state of one assistant instance.
// It is owned by the caller and passed into every Process call.
type Session struct {
	State         State              `json:"state"`
	TaskDraft     *model.Draft       `json:"task_draft,omitempty"`
	PendingTasks  []model.Draft      `json:"pending_tasks,omitempty"`
	MissingFields []taskparser.Field `json:"missing_fields,omitempty"`
}

// Response is the result of one conversational turn.
type Response struct {
	Message         string
	State           State
	ShowTaskPreview bool
	TaskDraft       *model.Draft
	MultipleTasks   []model.Draft
	TasksToSave     []model.Draft
	ClearDraft      bool
}
