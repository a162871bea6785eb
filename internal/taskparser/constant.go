package taskparser

import "regexp"

// DefaultTitle is used when nothing is left of the utterance after stripping.
const DefaultTitle = "New Task"

// Field names a draft attribute the conversation may ask about.
type Field string

const (
	FieldTitle    Field = "title"
	FieldDueDate  Field = "dueDate"
	FieldCategory Field = "category"
)

var (
	highPriorityKeywords = []string{"urgent", "asap", "critical", "important", "high priority", "high"}
	lowPriorityKeywords  = []string{"low priority", "low", "whenever", "eventually", "not urgent"}
)

// categoryKeywords is checked in order; the first category with a matching keyword wins.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"work", []string{"work", "office", "meeting", "project", "deadline", "report", "presentation"}},
	{"personal", []string{"personal", "self", "family", "friend"}},
	{"shopping", []string{"buy", "shop", "purchase", "store", "market", "groceries"}},
	{"health", []string{"doctor", "dentist", "appointment", "exercise", "workout", "gym"}},
	{"home", []string{"home", "house", "clean", "fix", "repair", "organize"}},
	{"finance", []string{"bank", "bill", "payment", "invoice", "tax", "money"}},
	{"social", []string{"call", "text", "email", "visit", "birthday", "party"}},
}

// Categories lists the canonical category names.
func Categories() []string {
	out := make([]string, 0, len(categoryKeywords))
	for _, c := range categoryKeywords {
		out = append(out, c.Category)
	}
	return out
}

var (
	relativeDaysRe  = regexp.MustCompile(`in\s+(\d+)\s+days?`)
	relativeWeeksRe = regexp.MustCompile(`in\s+(\d+)\s+weeks?`)

	// Applied in order by ExtractTitle.
	titleStripRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(create|add|make|do|task|todo)\s+`),
		regexp.MustCompile(`(?i)\b(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`(?i)\b(high|medium|low|urgent|important)\s*(priority)?\b`),
		regexp.MustCompile(`(?i)\b(by|due|on|at)\s+`),
		regexp.MustCompile(`(?i)\b(next|this)\s+(week|month|year)\b`),
		regexp.MustCompile(`(?i)\bin\s+\d+\s+(days?|weeks?|months?)\b`),
	}
	whitespaceRe = regexp.MustCompile(`\s+`)

	descriptionStripRe = regexp.MustCompile(`(?i)\b(today|tomorrow|high|medium|low|urgent|important)\b`)

	// Applied cumulatively by DetectMultipleTasks, in this order.
	wordSeparatorRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\band\s+`),
		regexp.MustCompile(`(?i)\bthen\s+`),
		regexp.MustCompile(`(?i)\balso\s+`),
		regexp.MustCompile(`(?i)\bnext\s+`),
		regexp.MustCompile(`\d+\.\s+`),
	}
	commaSeparatorRe = regexp.MustCompile(`,\s+`)
)

const (
	minSegmentLength     = 4
	minDescriptionLength = 6
)
