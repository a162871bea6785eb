package voice

// Transcript is one recognition event. Interim events carry partial text and
// are superseded by a later final event for the same utterance.
type Transcript struct {
	Text    string
	IsFinal bool
}

// Phase is what the turn loop is doing right now.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseListening  Phase = "listening"
	PhaseProcessing Phase = "processing"
	PhaseSpeaking   Phase = "speaking"
)
