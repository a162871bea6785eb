package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts relative date phrases to absolute time.Time values.
// All results are normalised to the start of day in the parser's timezone,
// except "this week" which resolves to the end of the current day.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a canonical relative phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
//
// Recognised phrases: today, tomorrow, yesterday, a weekday name, "next <weekday>",
// next week, this week, end of week, next month, "in N days|weeks|months".
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")
	base := p.StartOfDay(baseTime)

	switch relative {
	case "today":
		return base, nil
	case "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case "yesterday":
		return base.AddDate(0, 0, -1), nil
	case "next week":
		return base.AddDate(0, 0, 7), nil
	case "this week":
		return p.EndOfDay(base), nil
	case "end of week", "end of the week":
		return p.EndOfWeek(baseTime), nil
	case "next month":
		return base.AddDate(0, 1, 0), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if wd, ok := weekdayByName(strings.TrimPrefix(relative, "next ")); ok {
		return p.NextWeekday(baseTime, wd), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownPhrase, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}
	base := p.StartOfDay(baseTime)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), nil
	default:
		return base.AddDate(0, amount, 0), nil
	}
}

// NextWeekday returns the next future occurrence of target. When baseTime
// already falls on target the result is one week later, never the same day.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	base := p.StartOfDay(baseTime)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// EndOfWeek returns the coming Friday, or the same weekday a week later when
// baseTime is already Friday or Saturday.
func (p *Parser) EndOfWeek(baseTime time.Time) time.Time {
	base := p.StartOfDay(baseTime)
	daysUntilFriday := int(time.Friday - base.Weekday())
	if daysUntilFriday <= 0 {
		daysUntilFriday = 7
	}
	return base.AddDate(0, 0, daysUntilFriday)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func weekdayByName(name string) (time.Weekday, bool) {
	for _, wd := range Weekdays {
		if wd.Name == name {
			return wd.Weekday, true
		}
	}
	return 0, false
}
