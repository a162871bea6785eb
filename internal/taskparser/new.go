package taskparser

import (
	"time"

	"voice-task-assistant/pkg/datemath"
)

type implParser struct {
	dates *datemath.Parser
	now   func() time.Time
}

// Option configures the parser.
type Option func(*implParser)

// WithClock overrides the reference clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(p *implParser) {
		p.now = now
	}
}

// New creates a keyword/pattern based TaskParser.
func New(dates *datemath.Parser, opts ...Option) TaskParser {
	if dates == nil {
		panic("taskparser: date parser is required")
	}
	p := &implParser{dates: dates, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
