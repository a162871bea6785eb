package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateFormat is used for due dates, which carry no time of day.
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
