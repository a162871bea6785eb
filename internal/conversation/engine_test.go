package conversation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/taskparser"
	"voice-task-assistant/pkg/datemath"
)

// Wednesday, May 1, 2024 10:00 UTC
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newEngine(t *testing.T) *conversation.Engine {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	parser := taskparser.New(dates, taskparser.WithClock(func() time.Time { return fixedNow }))
	return conversation.New(parser, conversation.WithIDGenerator(sequentialIDs()))
}

// run feeds every utterance and returns the last response.
func run(e *conversation.Engine, sess *conversation.Session, inputs ...string) conversation.Response {
	var resp conversation.Response
	for _, in := range inputs {
		resp = e.Process(sess, in)
	}
	return resp
}

type panicParser struct {
	taskparser.TaskParser
}

func (panicParser) ParseTaskFromText(string) model.Draft {
	panic("boom")
}

func (panicParser) DetectMultipleTasks(string) []model.Draft {
	panic("boom")
}

func TestProcess_Greeting(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "hello there")

	assert.Equal(t, conversation.MsgGreeting, resp.Message)
	assert.Equal(t, conversation.StateGreeting, resp.State)
	assert.Equal(t, conversation.StateGreeting, sess.State)
	assert.Nil(t, sess.TaskDraft)
}

func TestProcess_ZeroValueSessionActsAsGreeting(t *testing.T) {
	e := newEngine(t)
	sess := &conversation.Session{}

	resp := e.Process(sess, "good morning")

	assert.Equal(t, conversation.MsgGreeting, resp.Message)
}

func TestProcess_CompleteUtteranceGoesStraightToConfirm(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "Buy groceries tomorrow")

	assert.Equal(t, conversation.StateConfirming, resp.State)
	assert.True(t, resp.ShowTaskPreview)
	require.NotNil(t, resp.TaskDraft)
	assert.Equal(t, "id-1", resp.TaskDraft.ID)
	assert.Equal(t, "Buy groceries", resp.TaskDraft.Title)
	assert.Equal(t, "shopping", resp.TaskDraft.Category)
	assert.Equal(t, model.PriorityMedium, resp.TaskDraft.Priority)
	require.NotNil(t, resp.TaskDraft.DueDate)
	assert.Equal(t, day(time.May, 2), *resp.TaskDraft.DueDate)

	assert.Contains(t, resp.Message, "📋 Buy groceries")
	assert.Contains(t, resp.Message, "📅 Due: Thursday, May 2nd")
	assert.Contains(t, resp.Message, "⚡ Priority: 🟡 Medium")
	assert.Contains(t, resp.Message, "📂 Category: shopping")
	assert.Contains(t, resp.Message, "Is this correct?")
}

func TestProcess_ConfirmCommitsAndResets(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := run(e, sess, "Buy groceries tomorrow", "yes")

	assert.Equal(t, conversation.StateGreeting, resp.State)
	assert.True(t, resp.ClearDraft)
	assert.Equal(t, fmt.Sprintf(conversation.MsgCreated, 1, "task"), resp.Message)
	require.Len(t, resp.TasksToSave, 1)
	assert.Equal(t, "Buy groceries", resp.TasksToSave[0].Title)
	assert.Equal(t, "id-1", resp.TasksToSave[0].ID)

	assert.Equal(t, conversation.StateGreeting, sess.State)
	assert.Nil(t, sess.TaskDraft)
	assert.Empty(t, sess.PendingTasks)
}

func TestProcess_CollectsMissingFieldsInOrder(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "add review slides")
	assert.Equal(t, conversation.StateCollectingInfo, resp.State)
	assert.Equal(t, conversation.MsgAskDueDate, resp.Message)
	assert.Equal(t, []taskparser.Field{taskparser.FieldDueDate, taskparser.FieldCategory}, sess.MissingFields)

	t.Run("invalid date reprompts", func(t *testing.T) {
		resp := e.Process(sess, "purple")
		assert.Equal(t, conversation.MsgInvalidDate, resp.Message)
		assert.Equal(t, conversation.StateCollectingInfo, resp.State)
		assert.Len(t, sess.MissingFields, 2)
	})

	t.Run("date accepted", func(t *testing.T) {
		resp := e.Process(sess, "next week")
		assert.Equal(t, conversation.MsgAskCategory, resp.Message)
		require.NotNil(t, sess.TaskDraft.DueDate)
		assert.Equal(t, day(time.May, 8), *sess.TaskDraft.DueDate)
	})

	t.Run("category taken verbatim", func(t *testing.T) {
		resp := e.Process(sess, "Hobbies")
		assert.Equal(t, conversation.StateConfirming, resp.State)
		assert.Equal(t, "Hobbies", sess.TaskDraft.Category)
		assert.Contains(t, resp.Message, "📂 Category: Hobbies")
	})
}

func TestProcess_CategoryKeywordIsCanonicalised(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	run(e, sess, "add review slides", "tomorrow")
	resp := e.Process(sess, "it's for the office")

	assert.Equal(t, conversation.StateConfirming, resp.State)
	assert.Equal(t, "work", sess.TaskDraft.Category)
}

func TestProcess_SkipDateAndCategory(t *testing.T) {
	tests := []struct {
		name      string
		dateReply string
		catReply  string
	}{
		{"skip both", "skip", "skip"},
		{"explicit phrases", "no date please", "no category"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t)
			sess := conversation.NewSession()

			resp := run(e, sess, "add review slides", tc.dateReply)
			assert.Equal(t, conversation.MsgAskCategory, resp.Message)
			assert.Nil(t, sess.TaskDraft.DueDate)

			resp = e.Process(sess, tc.catReply)
			assert.Equal(t, conversation.StateConfirming, resp.State)
			assert.Empty(t, sess.TaskDraft.Category)
			assert.NotContains(t, resp.Message, "📅 Due:")
			assert.NotContains(t, resp.Message, "📂 Category:")
		})
	}
}

func TestProcess_SkipDateWithCategoryResolved(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	e.Process(sess, "buy milk")
	require.Equal(t, []taskparser.Field{taskparser.FieldDueDate}, sess.MissingFields)

	resp := e.Process(sess, "no date")

	assert.Equal(t, conversation.StateConfirming, resp.State)
	assert.Empty(t, sess.MissingFields)
	assert.Nil(t, sess.TaskDraft.DueDate)
	assert.Equal(t, "shopping", sess.TaskDraft.Category)
}

func TestProcess_CancelFromEveryState(t *testing.T) {
	setups := map[conversation.State][]string{
		conversation.StateGreeting:       nil,
		conversation.StateCollectingInfo: {"add review slides"},
		conversation.StateConfirming:     {"Buy groceries tomorrow"},
		conversation.StateEditing:        {"Buy groceries tomorrow", "no"},
	}

	for state, setup := range setups {
		t.Run(string(state), func(t *testing.T) {
			e := newEngine(t)
			sess := conversation.NewSession()
			run(e, sess, setup...)
			require.Equal(t, state, sess.State)

			resp := e.Process(sess, "never mind")

			assert.Equal(t, conversation.MsgCancelled, resp.Message)
			assert.Equal(t, conversation.StateGreeting, resp.State)
			assert.True(t, resp.ClearDraft)
			assert.Equal(t, conversation.StateGreeting, sess.State)
			assert.Nil(t, sess.TaskDraft)
			assert.Empty(t, sess.PendingTasks)
			assert.Empty(t, sess.MissingFields)
		})
	}
}

func TestProcess_MultipleTasks(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "add buy milk and call mom tomorrow")

	assert.Equal(t, conversation.StateConfirming, resp.State)
	require.Len(t, resp.MultipleTasks, 2)
	assert.Equal(t, "Buy milk", resp.MultipleTasks[0].Title)
	assert.Equal(t, "id-1", resp.MultipleTasks[0].ID)
	assert.Equal(t, "Call mom", resp.MultipleTasks[1].Title)
	assert.Equal(t, "id-2", resp.MultipleTasks[1].ID)
	assert.Contains(t, resp.Message, "I found 2 tasks")
	assert.Contains(t, resp.Message, "1. 📋 Buy milk")
	assert.Contains(t, resp.Message, "2. 📋 Call mom")
	assert.Contains(t, resp.Message, conversation.MsgConfirmMultiple)

	resp = e.Process(sess, "yes")

	assert.Equal(t, fmt.Sprintf(conversation.MsgCreated, 2, "tasks"), resp.Message)
	require.Len(t, resp.TasksToSave, 2)
	assert.Equal(t, "Buy milk", resp.TasksToSave[0].Title)
	assert.Equal(t, "Call mom", resp.TasksToSave[1].Title)
	assert.Empty(t, sess.PendingTasks)
}

func TestProcess_MultipleCueWithSingleTaskFallsBack(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "add tea and go")

	assert.Empty(t, resp.MultipleTasks)
	require.NotNil(t, sess.TaskDraft)
	assert.Empty(t, sess.PendingTasks)
	assert.Equal(t, conversation.StateCollectingInfo, resp.State)
}

func TestProcess_EditingSingleDraft(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()
	run(e, sess, "Buy groceries tomorrow")

	resp := e.Process(sess, "no")
	assert.Equal(t, conversation.StateEditing, resp.State)
	assert.Equal(t, conversation.MsgEditPrompt, resp.Message)

	t.Run("date", func(t *testing.T) {
		resp := e.Process(sess, "change the date to friday")
		assert.Equal(t, conversation.StateConfirming, resp.State)
		assert.Equal(t, fmt.Sprintf(conversation.MsgDateUpdated, "Friday, May 3rd"), resp.Message)
		assert.Equal(t, day(time.May, 3), *sess.TaskDraft.DueDate)
	})

	t.Run("priority", func(t *testing.T) {
		run(e, sess, "wrong")
		resp := e.Process(sess, "make it high priority")
		assert.Equal(t, conversation.StateConfirming, resp.State)
		assert.Equal(t, fmt.Sprintf(conversation.MsgPriorityUpdated, "high"), resp.Message)
		assert.Equal(t, model.PriorityHigh, sess.TaskDraft.Priority)
	})

	t.Run("title", func(t *testing.T) {
		run(e, sess, "edit")
		resp := e.Process(sess, "change the title to Buy oat milk")
		assert.Equal(t, conversation.StateConfirming, resp.State)
		assert.Equal(t, fmt.Sprintf(conversation.MsgTitleUpdated, "Buy oat milk"), resp.Message)
	})

	t.Run("unclear", func(t *testing.T) {
		run(e, sess, "no")
		resp := e.Process(sess, "hmm")
		assert.Equal(t, conversation.StateEditing, resp.State)
		assert.Equal(t, conversation.MsgEditUnclear, resp.Message)
	})

	t.Run("commit keeps every edit", func(t *testing.T) {
		run(e, sess, "change the title to Buy oat milk")
		resp := e.Process(sess, "yes")
		require.Len(t, resp.TasksToSave, 1)
		saved := resp.TasksToSave[0]
		assert.Equal(t, "Buy oat milk", saved.Title)
		assert.Equal(t, model.PriorityHigh, saved.Priority)
		assert.Equal(t, day(time.May, 3), *saved.DueDate)
		assert.Equal(t, "id-1", saved.ID)
	})
}

func TestProcess_EditingAppliesToFirstPendingTask(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	run(e, sess, "add buy milk and call mom tomorrow", "no", "change the title to Buy oat milk")
	resp := e.Process(sess, "yes")

	require.Len(t, resp.TasksToSave, 2)
	assert.Equal(t, "Buy oat milk", resp.TasksToSave[0].Title)
	assert.Equal(t, "Call mom", resp.TasksToSave[1].Title)
}

func TestProcess_StartOverFromEditing(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := run(e, sess, "Buy groceries tomorrow", "no", "let's start over")

	assert.Equal(t, conversation.MsgCancelled, resp.Message)
	assert.Equal(t, conversation.StateGreeting, sess.State)
	assert.Nil(t, sess.TaskDraft)
}

func TestProcess_UnclearConfirmation(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := run(e, sess, "Buy groceries tomorrow", "maybe")

	assert.Equal(t, conversation.MsgConfirmUnclear, resp.Message)
	assert.Equal(t, conversation.StateConfirming, resp.State)
	assert.NotNil(t, sess.TaskDraft)
}

func TestProcess_ParserPanicsAreRecovered(t *testing.T) {
	e := conversation.New(panicParser{})

	t.Run("single", func(t *testing.T) {
		sess := conversation.NewSession()
		resp := e.Process(sess, "add buy milk")
		assert.Equal(t, conversation.MsgParseError, resp.Message)
		assert.Equal(t, conversation.StateGreeting, sess.State)
	})

	t.Run("multiple", func(t *testing.T) {
		sess := conversation.NewSession()
		resp := e.Process(sess, "add buy milk and eggs")
		assert.Equal(t, conversation.MsgMultipleParseError, resp.Message)
		assert.Equal(t, conversation.StateGreeting, sess.State)
	})
}

func TestProcess_UnknownStateStartsFresh(t *testing.T) {
	e := newEngine(t)
	sess := &conversation.Session{State: "limbo"}

	resp := e.Process(sess, "hello")

	assert.Equal(t, conversation.MsgStartFresh, resp.Message)
	assert.Equal(t, conversation.StateGreeting, sess.State)
}

func TestProcess_PreviewIsACopy(t *testing.T) {
	e := newEngine(t)
	sess := conversation.NewSession()

	resp := e.Process(sess, "Buy groceries tomorrow")
	resp.TaskDraft.Title = "mutated"

	assert.Equal(t, "Buy groceries", sess.TaskDraft.Title)
}

func TestSession_Clone(t *testing.T) {
	due := day(time.May, 2)
	sess := &conversation.Session{
		State:         conversation.StateConfirming,
		TaskDraft:     &model.Draft{ID: "a", Title: "A", DueDate: &due, Tags: []string{"x"}},
		MissingFields: []taskparser.Field{taskparser.FieldCategory},
	}

	c := sess.Clone()
	c.TaskDraft.Title = "B"
	*c.TaskDraft.DueDate = day(time.May, 9)
	c.TaskDraft.Tags[0] = "y"
	c.MissingFields[0] = taskparser.FieldTitle

	assert.Equal(t, "A", sess.TaskDraft.Title)
	assert.Equal(t, day(time.May, 2), *sess.TaskDraft.DueDate)
	assert.Equal(t, []string{"x"}, sess.TaskDraft.Tags)
	assert.Equal(t, taskparser.FieldCategory, sess.MissingFields[0])
}
