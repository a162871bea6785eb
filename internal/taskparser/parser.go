package taskparser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-task-assistant/internal/model"
)

// ParseTaskFromText runs every extractor over the full text and composes a draft.
// The returned draft has no ID; the caller assigns one when it starts tracking it.
func (p *implParser) ParseTaskFromText(text string) model.Draft {
	title := p.ExtractTitle(text)
	d := model.Draft{
		Title:       title,
		Priority:    p.ExtractPriority(text),
		Description: extractDescription(text, title),
	}
	if due, ok := p.ExtractDate(text); ok {
		d.DueDate = &due
	}
	if category, ok := p.ExtractCategory(text); ok {
		d.Category = category
	}
	return d
}

// DetectMultipleTasks splits text on list-like separators and parses every segment.
// Each separator is applied to the segments produced by the previous ones, so they compound.
func (p *implParser) DetectMultipleTasks(text string) []model.Draft {
	segments := SplitSegments(text)

	var drafts []model.Draft
	if len(segments) > 1 {
		for _, seg := range segments {
			seg = strings.TrimSpace(seg)
			if utf8.RuneCountInString(seg) < minSegmentLength {
				continue
			}
			drafts = append(drafts, p.ParseTaskFromText(seg))
		}
	} else {
		drafts = append(drafts, p.ParseTaskFromText(text))
	}

	out := drafts[:0]
	for _, d := range drafts {
		if d.Title != "" {
			out = append(out, d)
		}
	}
	return out
}

// SplitSegments applies the separator sequence cumulatively and drops blank segments after each pass.
func SplitSegments(text string) []string {
	segments := []string{text}
	for _, re := range wordSeparatorRes {
		segments = splitAll(segments, re.Split)
	}
	return splitAll(segments, splitBeforeWord)
}

func splitAll(segments []string, split func(string, int) []string) []string {
	var out []string
	for _, seg := range segments {
		for _, part := range split(seg, -1) {
			if strings.TrimSpace(part) != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// splitBeforeWord splits on a comma plus whitespace, but only where the next
// character is a word character.
func splitBeforeWord(s string, _ int) []string {
	var parts []string
	start := 0
	for _, loc := range commaSeparatorRe.FindAllStringIndex(s, -1) {
		if loc[1] >= len(s) || !isWordByte(s[loc[1]]) {
			continue
		}
		parts = append(parts, s[start:loc[0]])
		start = loc[1]
	}
	return append(parts, s[start:])
}

func isWordByte(b byte) bool {
	return b == '_' || b < utf8.RuneSelf && (unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)))
}

// IdentifyMissingFields lists, in fixed order, the fields the conversation
// should ask about. Priority always has a default and is never missing.
func IdentifyMissingFields(d model.Draft) []Field {
	var missing []Field
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, FieldTitle)
	}
	if d.DueDate == nil {
		missing = append(missing, FieldDueDate)
	}
	if d.Category == "" {
		missing = append(missing, FieldCategory)
	}
	return missing
}
