package conversation

import (
	"github.com/google/uuid"

	"voice-task-assistant/internal/taskparser"
)

// Engine drives the task-creation dialogue. It holds no per-session state,
// so one Engine can serve any number of sessions.
type Engine struct {
	parser  taskparser.TaskParser
	intents IntentTable
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides how draft ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithIntents replaces the keyword table.
func WithIntents(t IntentTable) Option {
	return func(e *Engine) {
		e.intents = t
	}
}

// New creates an Engine backed by parser.
func New(parser taskparser.TaskParser, opts ...Option) *Engine {
	e := &Engine{
		parser:  parser,
		intents: DefaultIntents,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
