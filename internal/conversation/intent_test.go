package conversation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
)

func TestIntentTable_Matches(t *testing.T) {
	tests := []struct {
		name   string
		intent conversation.Intent
		input  string
		want   bool
	}{
		{"cancel phrase", conversation.IntentCancel, "  Never Mind  ", true},
		{"create phrase", conversation.IntentCreate, "Add something", true},
		{"task-like action", conversation.IntentTaskLike, "email the landlord", true},
		{"task-like time word", conversation.IntentTaskLike, "by the end of the month", true},
		{"chit-chat", conversation.IntentTaskLike, "how are you", false},
		{"numbered list", conversation.IntentMultiple, "1. milk 2. eggs", true},
		{"confirm", conversation.IntentConfirm, "Yep", true},
		{"incorrect contains correct", conversation.IntentConfirm, "incorrect", true},
		{"reject", conversation.IntentReject, "nope", true},
		{"skip date", conversation.IntentSkipDate, "no date", true},
		{"restart", conversation.IntentRestart, "start over", true},
		{"unknown intent", conversation.Intent("dance"), "dance", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, conversation.DefaultIntents.Matches(tc.intent, tc.input))
		})
	}
}

func TestWithIntents(t *testing.T) {
	e := newEngine(t)
	custom := conversation.IntentTable{}
	for k, v := range conversation.DefaultIntents {
		custom[k] = v
	}
	custom[conversation.IntentCancel] = conversation.Rule{Phrases: []string{"abort"}}

	e2 := conversation.New(nil, conversation.WithIntents(custom))

	sess := conversation.NewSession()
	resp := e2.Process(sess, "abort")
	assert.Equal(t, conversation.MsgCancelled, resp.Message)

	// "stop" is no longer a cancel phrase and is not a task either.
	resp = e2.Process(sess, "stop")
	assert.Equal(t, conversation.MsgGreeting, resp.Message)

	resp = e.Process(conversation.NewSession(), "stop")
	assert.Equal(t, conversation.MsgCancelled, resp.Message)
}

func TestFormatTaskSummary(t *testing.T) {
	due := time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)

	t.Run("all fields", func(t *testing.T) {
		got := conversation.FormatTaskSummary(model.Draft{
			Title:    "Pay rent",
			DueDate:  &due,
			Priority: model.PriorityHigh,
			Category: "finance",
		})
		assert.Equal(t, "📋 Pay rent\n📅 Due: Wednesday, May 22nd\n⚡ Priority: 🔴 High\n📂 Category: finance", got)
	})

	t.Run("missing optional fields", func(t *testing.T) {
		got := conversation.FormatTaskSummary(model.Draft{Title: "Stretch"})
		assert.Equal(t, "📋 Stretch\n⚡ Priority: 🟡 Medium", got)
	})
}

func TestFormatDueDate(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "Wednesday, May 1st"},
		{2, "Thursday, May 2nd"},
		{3, "Friday, May 3rd"},
		{4, "Saturday, May 4th"},
		{11, "Saturday, May 11th"},
		{12, "Sunday, May 12th"},
		{13, "Monday, May 13th"},
		{21, "Tuesday, May 21st"},
		{23, "Thursday, May 23rd"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := conversation.FormatDueDate(time.Date(2024, 5, tc.day, 0, 0, 0, 0, time.UTC))
			assert.Equal(t, tc.want, got)
		})
	}
}
