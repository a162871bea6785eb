package voice

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	pkgLog "voice-task-assistant/pkg/log"
)

// Loop alternates between listening and speaking for one user. A turn is
// listen, respond, speak; the next listen starts only after playback ends.
type Loop struct {
	l        pkgLog.Logger
	uc       assistant.UseCase
	listener Listener
	speaker  Speaker
	scope    model.Scope

	onInterim func(text string)
	onReply   func(assistant.Reply)
	onPhase   func(Phase)

	mu    sync.Mutex
	phase Phase
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithInterim receives partial transcripts, e.g. to show live captions.
func WithInterim(fn func(text string)) LoopOption {
	return func(lp *Loop) {
		lp.onInterim = fn
	}
}

// WithReplyHook receives every reply before it is spoken.
func WithReplyHook(fn func(assistant.Reply)) LoopOption {
	return func(lp *Loop) {
		lp.onReply = fn
	}
}

// WithPhaseHook is called on every phase change.
func WithPhaseHook(fn func(Phase)) LoopOption {
	return func(lp *Loop) {
		lp.onPhase = fn
	}
}

// NewLoop creates a turn loop for sc.
func NewLoop(l pkgLog.Logger, uc assistant.UseCase, listener Listener, speaker Speaker, sc model.Scope, opts ...LoopOption) *Loop {
	lp := &Loop{
		l:        l,
		uc:       uc,
		listener: listener,
		speaker:  speaker,
		scope:    sc,
		phase:    PhaseIdle,
	}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// Phase reports the current phase.
func (lp *Loop) Phase() Phase {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.phase
}

// Run speaks greeting (when non-empty) and then processes turns until ctx is
// cancelled or the listener reaches io.EOF. Speaker failures are logged and
// the loop goes on listening.
func (lp *Loop) Run(ctx context.Context, greeting string) error {
	defer lp.setPhase(PhaseIdle)

	if greeting != "" {
		lp.speak(ctx, greeting)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		lp.setPhase(PhaseListening)
		tr, err := lp.listener.Listen(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			lp.l.Errorf(ctx, "internal.voice.Loop.Run.Listen: %v", err)
			return err
		}

		if !tr.IsFinal {
			if lp.onInterim != nil {
				lp.onInterim(tr.Text)
			}
			continue
		}
		text := strings.TrimSpace(tr.Text)
		if text == "" {
			continue
		}

		lp.setPhase(PhaseProcessing)
		reply, err := lp.uc.Respond(ctx, lp.scope, text)
		if err != nil {
			lp.l.Errorf(ctx, "internal.voice.Loop.Run.Respond: %v", err)
			return err
		}
		if lp.onReply != nil {
			lp.onReply(reply)
		}

		lp.speak(ctx, reply.Message)
	}
}

func (lp *Loop) speak(ctx context.Context, text string) {
	lp.setPhase(PhaseSpeaking)
	if err := lp.speaker.Speak(ctx, text); err != nil {
		lp.l.Warnf(ctx, "internal.voice.Loop.speak: %v", err)
	}
}

func (lp *Loop) setPhase(p Phase) {
	lp.mu.Lock()
	lp.phase = p
	lp.mu.Unlock()
	if lp.onPhase != nil {
		lp.onPhase(p)
	}
}
