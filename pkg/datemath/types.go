package datemath

import (
	"errors"
	"time"
)

// ErrUnknownPhrase is returned when a phrase is not a recognised relative date.
var ErrUnknownPhrase = errors.New("unknown relative date phrase")

// Weekdays maps lower-case weekday names to time.Weekday, in Sunday-first order.
var Weekdays = []struct {
	Name    string
	Weekday time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}
