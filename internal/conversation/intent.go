package conversation

import (
	"regexp"
	"strings"
)

// Intent is a coarse classification of what an utterance is for.
type Intent string

const (
	IntentCancel       Intent = "cancel"
	IntentCreate       Intent = "create"
	IntentTaskLike     Intent = "task_like"
	IntentMultiple     Intent = "multiple"
	IntentConfirm      Intent = "confirm"
	IntentReject       Intent = "reject"
	IntentSkipDate     Intent = "skip_date"
	IntentSkipCategory Intent = "skip_category"
	IntentRestart      Intent = "restart"
	IntentEditDate     Intent = "edit_date"
	IntentEditPriority Intent = "edit_priority"
	IntentEditTitle    Intent = "edit_title"
)

// Rule triggers an intent when any phrase is a substring of the input or any pattern matches.
type Rule struct {
	Phrases  []string
	Patterns []*regexp.Regexp
}

// IntentTable holds the trigger rules per intent. Input is lower-cased and
// trimmed before matching.
type IntentTable map[Intent]Rule

// DefaultIntents is the built-in keyword table.
var DefaultIntents = IntentTable{
	IntentCancel: {Phrases: []string{"cancel", "never mind", "stop", "quit", "exit"}},
	IntentCreate: {Phrases: []string{"create", "add", "make", "new task", "todo", "remind", "schedule"}},
	IntentTaskLike: {Phrases: []string{
		// action words
		"buy", "call", "email", "visit", "finish", "complete", "submit", "send", "book", "schedule",
		// time words
		"today", "tomorrow", "friday", "monday", "week", "month",
	}},
	IntentMultiple: {
		Phrases:  []string{"multiple", "several", "and ", "also ", "then "},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`\d+\.\s`)},
	},
	IntentConfirm:      {Phrases: []string{"yes", "yeah", "yep", "correct", "right", "confirm", "create", "save"}},
	IntentReject:       {Phrases: []string{"no", "nope", "wrong", "incorrect", "change", "edit", "modify"}},
	IntentSkipDate:     {Phrases: []string{"no date", "skip"}},
	IntentSkipCategory: {Phrases: []string{"skip", "no category"}},
	IntentRestart:      {Phrases: []string{"start over", "cancel"}},
	IntentEditDate:     {Phrases: []string{"date", "due"}},
	IntentEditPriority: {Phrases: []string{"priority"}},
	IntentEditTitle:    {Phrases: []string{"title", "name"}},
}

// Matches reports whether input triggers intent. Unknown intents never match.
func (t IntentTable) Matches(intent Intent, input string) bool {
	rule, ok := t[intent]
	if !ok {
		return false
	}
	input = strings.ToLower(strings.TrimSpace(input))
	for _, p := range rule.Phrases {
		if strings.Contains(input, p) {
			return true
		}
	}
	for _, re := range rule.Patterns {
		if re.MatchString(input) {
			return true
		}
	}
	return false
}
