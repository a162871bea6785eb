// Package console implements the voice adapters over a terminal: typed lines
// stand in for final transcripts and replies are printed instead of spoken.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"voice-task-assistant/internal/voice"
)

const interimPrefix = "~"

// Listener reads one transcript per line. Lines starting with "~" are
// delivered as interim transcripts. A line is only read from in once Listen
// asks for it. Listen must not be called concurrently.
type Listener struct {
	in     io.Reader
	prompt func()

	once      sync.Once
	closeOnce sync.Once
	want      chan struct{}
	lines     chan lineResult
	done      chan struct{}

	pending bool
	err     error
}

type lineResult struct {
	text string
	err  error
}

// NewListener creates a Listener over in. prompt, if not nil, is called each
// time a new line is requested.
func NewListener(in io.Reader, prompt func()) *Listener {
	return &Listener{
		in:     in,
		prompt: prompt,
		want:   make(chan struct{}, 1),
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}
}

func (c *Listener) start() {
	go func() {
		sc := bufio.NewScanner(c.in)
		for {
			select {
			case <-c.want:
			case <-c.done:
				return
			}

			var res lineResult
			if sc.Scan() {
				res.text = sc.Text()
			} else if res.err = sc.Err(); res.err == nil {
				res.err = io.EOF
			}

			select {
			case c.lines <- res:
			case <-c.done:
				return
			}
			if res.err != nil {
				return
			}
		}
	}()
}

// Listen returns the next transcript. A line requested by a cancelled call is
// handed to the next one instead of being dropped.
func (c *Listener) Listen(ctx context.Context) (voice.Transcript, error) {
	if c.err != nil {
		return voice.Transcript{}, c.err
	}
	if err := ctx.Err(); err != nil {
		return voice.Transcript{}, err
	}
	c.once.Do(c.start)

	if !c.pending {
		if c.prompt != nil {
			c.prompt()
		}
		c.pending = true
		c.want <- struct{}{}
	}

	select {
	case <-ctx.Done():
		return voice.Transcript{}, ctx.Err()
	case <-c.done:
		return voice.Transcript{}, io.EOF
	case res := <-c.lines:
		c.pending = false
		if res.err != nil {
			c.err = res.err
			return voice.Transcript{}, res.err
		}
		if strings.HasPrefix(res.text, interimPrefix) {
			return voice.Transcript{Text: strings.TrimPrefix(res.text, interimPrefix)}, nil
		}
		return voice.Transcript{Text: res.text, IsFinal: true}, nil
	}
}

// Close stops the reader goroutine. A read already blocked on in finishes
// when in yields or is closed.
func (c *Listener) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// Speaker prints replies to out.
type Speaker struct {
	out    io.Writer
	prefix string
}

func NewSpeaker(out io.Writer, prefix string) *Speaker {
	return &Speaker{out: out, prefix: prefix}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "%s%s\n\n", s.prefix, text)
	return err
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
