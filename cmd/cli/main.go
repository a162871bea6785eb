package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "assistant"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Voice task assistant for the terminal",
		Long: `Talk to the task assistant from a terminal. Each line you type is
treated as a final speech transcript and replies are printed instead of spoken.

Tasks are stored in the same database as the API server.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.user, "user", "u", "local", "User id the session and tasks belong to")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at the configured level instead of errors only")

	chat := chatCmd(&opts)
	cmd.RunE = chat.RunE
	cmd.Flags().AddFlagSet(chat.Flags())

	cmd.AddCommand(
		chat,
		tasksCmd(&opts),
		tokenCmd(&opts),
		calendarAuthCmd(),
		versionCmd(),
	)
	return cmd
}
