package voice

import "context"

// Listener captures speech. Listen blocks until the next transcript event and
// returns io.EOF when the input is exhausted.
type Listener interface {
	Listen(ctx context.Context) (Transcript, error)
}

// Speaker plays text back. Speak returns when playback has finished.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
