package conversation

import (
	"fmt"
	"strings"

	"voice-task-assistant/internal/taskparser"
)

// Process runs one turn of the dialogue against sess and returns the
// assistant reply. sess is updated in place and must not be nil.
// Process never fails: extraction misses re-prompt and parser panics are
// recovered into a fallback message.
func (e *Engine) Process(sess *Session, input string) Response {
	text := strings.TrimSpace(input)
	lower := strings.ToLower(text)

	if e.intents.Matches(IntentCancel, lower) {
		return e.cancel(sess)
	}

	switch sess.State {
	case StateGreeting, "":
		return e.handleGreeting(sess, text, lower)
	case StateCollectingInfo:
		return e.handleInfoCollection(sess, text, lower)
	case StateConfirming:
		return e.handleConfirmation(sess, lower)
	case StateEditing:
		return e.handleEditing(sess, text, lower)
	default:
		return e.startFresh(sess)
	}
}

func (e *Engine) handleGreeting(sess *Session, text, lower string) Response {
	if !e.isTaskCreation(lower) {
		return Response{Message: MsgGreeting, State: StateGreeting}
	}

	if e.intents.Matches(IntentMultiple, lower) {
		if resp, handled := e.handleMultipleTasks(sess, text); handled {
			return resp
		}
	}
	return e.handleSingleTask(sess, text)
}

func (e *Engine) isTaskCreation(lower string) bool {
	return e.intents.Matches(IntentCreate, lower) || e.intents.Matches(IntentTaskLike, lower)
}

// handleMultipleTasks reports handled=false when fewer than two tasks were
// found, so the caller falls back to single-task handling.
func (e *Engine) handleMultipleTasks(sess *Session, text string) (resp Response, handled bool) {
	defer func() {
		if r := recover(); r != nil {
			sess.Reset()
			resp, handled = Response{Message: MsgMultipleParseError, State: StateGreeting}, true
		}
	}()

	drafts := e.parser.DetectMultipleTasks(text)
	if len(drafts) <= 1 {
		return Response{}, false
	}

	for i := range drafts {
		drafts[i].ID = e.newID()
	}
	sess.TaskDraft = nil
	sess.PendingTasks = drafts
	sess.MissingFields = nil
	sess.State = StateConfirming

	draft, multi := sess.Preview()
	return Response{
		Message:         formatMultipleSummary(drafts),
		State:           StateConfirming,
		ShowTaskPreview: true,
		TaskDraft:       draft,
		MultipleTasks:   multi,
	}, true
}

func (e *Engine) handleSingleTask(sess *Session, text string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			sess.Reset()
			resp = Response{Message: MsgParseError, State: StateGreeting}
		}
	}()

	draft := e.parser.ParseTaskFromText(text)
	draft.ID = e.newID()

	sess.TaskDraft = &draft
	sess.PendingTasks = nil
	sess.MissingFields = taskparser.IdentifyMissingFields(draft)

	if len(sess.MissingFields) == 0 {
		return e.proceedToConfirmation(sess)
	}
	sess.State = StateCollectingInfo
	return e.askForMissingInfo(sess)
}

// handleInfoCollection resolves only the first missing field, one per turn.
func (e *Engine) handleInfoCollection(sess *Session, text, lower string) Response {
	draft := sess.editTarget()
	if draft == nil {
		return e.startFresh(sess)
	}
	if len(sess.MissingFields) == 0 {
		return e.proceedToConfirmation(sess)
	}

	switch sess.MissingFields[0] {
	case taskparser.FieldTitle:
		if text == "" {
			return e.askForMissingInfo(sess)
		}
		draft.Title = e.parser.ExtractTitle(text)
	case taskparser.FieldDueDate:
		if due, ok := e.parser.ExtractDate(text); ok {
			draft.DueDate = &due
		} else if !e.intents.Matches(IntentSkipDate, lower) {
			preview, _ := sess.Preview()
			return Response{
				Message:         MsgInvalidDate,
				State:           StateCollectingInfo,
				ShowTaskPreview: true,
				TaskDraft:       preview,
			}
		}
	case taskparser.FieldCategory:
		// Any answer is a valid category.
		if category, ok := e.parser.ExtractCategory(text); ok {
			draft.Category = category
		} else if !e.intents.Matches(IntentSkipCategory, lower) {
			draft.Category = text
		}
	}

	sess.MissingFields = sess.MissingFields[1:]
	if len(sess.MissingFields) > 0 {
		return e.askForMissingInfo(sess)
	}
	return e.proceedToConfirmation(sess)
}

func (e *Engine) handleConfirmation(sess *Session, lower string) Response {
	draft, multi := sess.Preview()

	switch {
	case e.intents.Matches(IntentConfirm, lower):
		tasks := sess.draftsToSave()
		if len(tasks) == 0 {
			return e.startFresh(sess)
		}
		sess.Reset()
		return Response{
			Message:     fmt.Sprintf(MsgCreated, len(tasks), pluralTasks(len(tasks))),
			State:       StateGreeting,
			TasksToSave: tasks,
			ClearDraft:  true,
		}
	case e.intents.Matches(IntentReject, lower):
		sess.State = StateEditing
		return Response{
			Message:         MsgEditPrompt,
			State:           StateEditing,
			ShowTaskPreview: true,
			TaskDraft:       draft,
			MultipleTasks:   multi,
		}
	default:
		return Response{
			Message:         MsgConfirmUnclear,
			State:           StateConfirming,
			ShowTaskPreview: true,
			TaskDraft:       draft,
			MultipleTasks:   multi,
		}
	}
}

// handleEditing applies at most one change. Date, priority and title are
// tried in that order; a failed date extraction falls through to the next.
func (e *Engine) handleEditing(sess *Session, text, lower string) Response {
	if e.intents.Matches(IntentRestart, lower) {
		return e.cancel(sess)
	}

	target := sess.editTarget()
	if target == nil {
		return e.startFresh(sess)
	}

	if e.intents.Matches(IntentEditDate, lower) {
		if due, ok := e.parser.ExtractDate(text); ok {
			target.DueDate = &due
			return e.backToConfirming(sess, fmt.Sprintf(MsgDateUpdated, FormatDueDate(due)))
		}
	}

	if e.intents.Matches(IntentEditPriority, lower) {
		target.Priority = e.parser.ExtractPriority(text)
		return e.backToConfirming(sess, fmt.Sprintf(MsgPriorityUpdated, target.Priority))
	}

	if e.intents.Matches(IntentEditTitle, lower) {
		if m := titleEditRe.FindStringSubmatch(text); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				target.Title = title
				return e.backToConfirming(sess, fmt.Sprintf(MsgTitleUpdated, title))
			}
		}
	}

	draft, multi := sess.Preview()
	return Response{
		Message:         MsgEditUnclear,
		State:           StateEditing,
		ShowTaskPreview: true,
		TaskDraft:       draft,
		MultipleTasks:   multi,
	}
}

func (e *Engine) askForMissingInfo(sess *Session) Response {
	msg := MsgAskMore
	if len(sess.MissingFields) > 0 {
		switch sess.MissingFields[0] {
		case taskparser.FieldTitle:
			msg = MsgAskTitle
		case taskparser.FieldDueDate:
			msg = MsgAskDueDate
		case taskparser.FieldCategory:
			msg = MsgAskCategory
		}
	}

	draft, _ := sess.Preview()
	return Response{
		Message:         msg,
		State:           StateCollectingInfo,
		ShowTaskPreview: true,
		TaskDraft:       draft,
	}
}

func (e *Engine) proceedToConfirmation(sess *Session) Response {
	sess.State = StateConfirming
	draft, _ := sess.Preview()
	if draft == nil {
		return e.startFresh(sess)
	}
	return Response{
		Message:         fmt.Sprintf(MsgConfirmSingle, FormatTaskSummary(*draft)),
		State:           StateConfirming,
		ShowTaskPreview: true,
		TaskDraft:       draft,
	}
}

func (e *Engine) backToConfirming(sess *Session, msg string) Response {
	sess.State = StateConfirming
	draft, multi := sess.Preview()
	return Response{
		Message:         msg,
		State:           StateConfirming,
		ShowTaskPreview: true,
		TaskDraft:       draft,
		MultipleTasks:   multi,
	}
}

func (e *Engine) cancel(sess *Session) Response {
	sess.Reset()
	return Response{
		Message:    MsgCancelled,
		State:      StateGreeting,
		ClearDraft: true,
	}
}

func (e *Engine) startFresh(sess *Session) Response {
	sess.Reset()
	return Response{Message: MsgStartFresh, State: StateGreeting}
}

func pluralTasks(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}
