package voice

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/pkg/log"
)

type scriptedListener struct {
	events []Transcript
	err    error
	loop   *Loop
	during []Phase
}

func (s *scriptedListener) Listen(context.Context) (Transcript, error) {
	if s.loop != nil {
		s.during = append(s.during, s.loop.Phase())
	}
	if len(s.events) == 0 {
		if s.err != nil {
			return Transcript{}, s.err
		}
		return Transcript{}, io.EOF
	}
	tr := s.events[0]
	s.events = s.events[1:]
	return tr, nil
}

type recordingSpeaker struct {
	spoken []string
	err    error
	loop   *Loop
	during []Phase
}

func (s *recordingSpeaker) Speak(_ context.Context, text string) error {
	if s.loop != nil {
		s.during = append(s.during, s.loop.Phase())
	}
	s.spoken = append(s.spoken, text)
	return s.err
}

type echoUseCase struct {
	assistant.UseCase
	heard []string
	err   error
}

func (e *echoUseCase) Respond(_ context.Context, _ model.Scope, utterance string) (assistant.Reply, error) {
	e.heard = append(e.heard, utterance)
	return assistant.Reply{Message: "heard " + utterance}, e.err
}

var user = model.Scope{UserID: "u1"}

func TestLoop_Run(t *testing.T) {
	listener := &scriptedListener{events: []Transcript{
		{Text: "buy", IsFinal: false},
		{Text: "buy milk", IsFinal: true},
		{Text: "   ", IsFinal: true},
		{Text: "yes", IsFinal: true},
	}}
	speaker := &recordingSpeaker{}
	uc := &echoUseCase{}
	var interim []string
	var replies int

	lp := NewLoop(log.NewNop(), uc, listener, speaker, user,
		WithInterim(func(text string) { interim = append(interim, text) }),
		WithReplyHook(func(assistant.Reply) { replies++ }),
	)
	listener.loop, speaker.loop = lp, lp

	require.NoError(t, lp.Run(context.Background(), "hello"))

	assert.Equal(t, []string{"buy milk", "yes"}, uc.heard)
	assert.Equal(t, []string{"hello", "heard buy milk", "heard yes"}, speaker.spoken)
	assert.Equal(t, []string{"buy"}, interim)
	assert.Equal(t, 2, replies)
	assert.Equal(t, PhaseIdle, lp.Phase())

	for _, p := range listener.during {
		assert.Equal(t, PhaseListening, p)
	}
	for _, p := range speaker.during {
		assert.Equal(t, PhaseSpeaking, p)
	}
}

func TestLoop_SpeakerFailureKeepsListening(t *testing.T) {
	listener := &scriptedListener{events: []Transcript{{Text: "a", IsFinal: true}, {Text: "b", IsFinal: true}}}
	speaker := &recordingSpeaker{err: errors.New("audio device busy")}
	uc := &echoUseCase{}

	err := NewLoop(log.NewNop(), uc, listener, speaker, user).Run(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, uc.heard)
}

func TestLoop_Errors(t *testing.T) {
	t.Run("listener failure stops the loop", func(t *testing.T) {
		listener := &scriptedListener{err: ErrUnsupported}
		err := NewLoop(log.NewNop(), &echoUseCase{}, listener, &recordingSpeaker{}, user).Run(context.Background(), "")
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("respond failure stops the loop", func(t *testing.T) {
		listener := &scriptedListener{events: []Transcript{{Text: "a", IsFinal: true}}}
		uc := &echoUseCase{err: assistant.ErrNoUser}
		err := NewLoop(log.NewNop(), uc, listener, &recordingSpeaker{}, model.Scope{}).Run(context.Background(), "")
		assert.ErrorIs(t, err, assistant.ErrNoUser)
	})

	t.Run("cancelled context ends quietly", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		speaker := &recordingSpeaker{}
		err := NewLoop(log.NewNop(), &echoUseCase{}, &scriptedListener{}, speaker, user).Run(ctx, "")
		assert.NoError(t, err)
	})
}

func TestLoop_PhaseHook(t *testing.T) {
	var phases []Phase
	listener := &scriptedListener{events: []Transcript{{Text: "a", IsFinal: true}}}

	err := NewLoop(log.NewNop(), &echoUseCase{}, listener, &recordingSpeaker{}, user,
		WithPhaseHook(func(p Phase) { phases = append(phases, p) }),
	).Run(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseListening, PhaseProcessing, PhaseSpeaking, PhaseListening, PhaseIdle}, phases)
}
