package taskparser

import (
	"time"

	"voice-task-assistant/internal/model"
)

// Extractor maps utterance text to individual task fields. Implementations
// must be pure: the same text always yields the same value.
type Extractor interface {
	ExtractDate(text string) (time.Time, bool)
	ExtractPriority(text string) model.Priority
	ExtractCategory(text string) (string, bool)
	ExtractTitle(text string) string
}

// TaskParser turns whole utterances into drafts.
type TaskParser interface {
	Extractor
	ParseTaskFromText(text string) model.Draft
	DetectMultipleTasks(text string) []model.Draft
}
