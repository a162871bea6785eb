package conversation

import (
	"fmt"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
)

var priorityMarkers = map[model.Priority]string{
	model.PriorityHigh:   "🔴",
	model.PriorityMedium: "🟡",
	model.PriorityLow:    "🟢",
}

// FormatTaskSummary renders a draft for the confirmation prompt.
func FormatTaskSummary(d model.Draft) string {
	var sb strings.Builder
	sb.WriteString("📋 " + d.Title)

	if d.DueDate != nil {
		sb.WriteString("\n📅 Due: " + FormatDueDate(*d.DueDate))
	}

	priority := d.Priority
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}
	p := string(priority)
	sb.WriteString(fmt.Sprintf("\n⚡ Priority: %s %s", priorityMarkers[priority], strings.ToUpper(p[:1])+p[1:]))

	if d.Category != "" {
		sb.WriteString("\n📂 Category: " + d.Category)
	}
	return sb.String()
}

// FormatDueDate renders t like "Monday, January 2nd".
func FormatDueDate(t time.Time) string {
	return t.Format("Monday, January ") + ordinal(t.Day())
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func formatMultipleSummary(drafts []model.Draft) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(MsgFoundTasks, len(drafts)))
	for i, d := range drafts {
		sb.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, FormatTaskSummary(d)))
	}
	sb.WriteString(MsgConfirmMultiple)
	return sb.String()
}
