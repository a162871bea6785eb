package taskparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/pkg/datemath"
)

// ExtractDate finds the first relative date phrase in text. Phrases are
// tested one after another and the first match wins; they are never combined.
func (p *implParser) ExtractDate(text string) (time.Time, bool) {
	lower := strings.ToLower(text)
	now := p.now()

	for _, phrase := range []string{"today", "tomorrow"} {
		if strings.Contains(lower, phrase) {
			return p.resolve(phrase, now)
		}
	}

	for _, wd := range datemath.Weekdays {
		if strings.Contains(lower, wd.Name) {
			return p.dates.NextWeekday(now, wd.Weekday), true
		}
	}

	for _, phrase := range []string{"next week", "this week", "end of week", "end of the week", "next month"} {
		if strings.Contains(lower, phrase) {
			return p.resolve(phrase, now)
		}
	}

	if m := relativeDaysRe.FindStringSubmatch(lower); m != nil {
		return p.resolve(fmt.Sprintf("in %s days", m[1]), now)
	}
	if m := relativeWeeksRe.FindStringSubmatch(lower); m != nil {
		return p.resolve(fmt.Sprintf("in %s weeks", m[1]), now)
	}

	return time.Time{}, false
}

func (p *implParser) resolve(phrase string, now time.Time) (time.Time, bool) {
	t, err := p.dates.Parse(phrase, now)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractPriority returns high, low or medium. High keywords are checked first.
func (p *implParser) ExtractPriority(text string) model.Priority {
	lower := strings.ToLower(text)
	if containsAny(lower, highPriorityKeywords) {
		return model.PriorityHigh
	}
	if containsAny(lower, lowPriorityKeywords) {
		return model.PriorityLow
	}
	return model.PriorityMedium
}

// ExtractCategory returns the first canonical category whose keywords appear in text.
func (p *implParser) ExtractCategory(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, c := range categoryKeywords {
		if containsAny(lower, c.Keywords) {
			return c.Category, true
		}
	}
	return "", false
}

// ExtractTitle strips verbs, date and priority phrases and connector words,
// then capitalises what is left. It never returns an empty string.
func (p *implParser) ExtractTitle(text string) string {
	title := text
	for _, re := range titleStripRes {
		title = re.ReplaceAllString(title, "")
	}
	title = strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))
	if title == "" {
		return DefaultTitle
	}
	return capitalize(title)
}

// extractDescription keeps whatever the title did not absorb, if it is long enough.
func extractDescription(text, title string) string {
	desc := text
	if title != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(title))
		if loc := re.FindStringIndex(desc); loc != nil {
			desc = desc[:loc[0]] + desc[loc[1]:]
		}
	}
	desc = strings.TrimSpace(descriptionStripRe.ReplaceAllString(desc, ""))
	if utf8.RuneCountInString(desc) < minDescriptionLength {
		return ""
	}
	return desc
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
