package gcalendar

import "time"

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
	allDayFormat      = "2006-01-02"
)

// Options selects the calendar events are written to and, for OAuth desktop
// credentials, where the saved token lives.
type Options struct {
	CalendarID string
	TokenPath  string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	// Date is set for all-day events, StartTime for timed ones.
	Date      string
	StartTime time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
