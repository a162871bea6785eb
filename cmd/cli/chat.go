package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voice-task-assistant/internal/assistant/repository/memory"
	assistantUC "voice-task-assistant/internal/assistant/usecase"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/taskparser"
	"voice-task-assistant/internal/voice"
	"voice-task-assistant/internal/voice/console"
)

const (
	promptText   = "you> "
	speakerLabel = "assistant> "

	msgUnsupported = "Speech input is not available here: standard input is not an interactive terminal.\n" +
		"Run the assistant from a terminal, or pass --script to read one transcript per line from stdin."
)

func chatCmd(opts *globalOptions) *cobra.Command {
	var script bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a conversation (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !script && !console.IsTerminal(os.Stdin) {
				fmt.Fprintln(cmd.ErrOrStderr(), msgUnsupported)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var prompt func()
			if !script {
				prompt = func() { fmt.Fprint(cmd.OutOrStdout(), promptText) }
			}
			return runChat(ctx, *opts, cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "Read transcripts from stdin even when it is not a terminal")
	return cmd
}

func runChat(ctx context.Context, opts globalOptions, in io.Reader, out io.Writer, prompt func()) error {
	d, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer d.closer()

	engine := conversation.New(taskparser.New(d.dates))
	uc := assistantUC.New(d.l, engine, memory.New(1, 24*time.Hour), d.tasks)

	listener := console.NewListener(in, prompt)
	defer listener.Close()

	loop := voice.NewLoop(d.l, uc,
		listener,
		console.NewSpeaker(out, speakerLabel),
		opts.scope(),
	)
	return loop.Run(ctx, conversation.MsgGreeting)
}
