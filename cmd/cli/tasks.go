package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

func tasksCmd(opts *globalOptions) *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List saved tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := bootstrap(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			defer d.closer()

			out, err := d.tasks.List(cmd.Context(), opts.scope(), task.ListInput{
				Status: model.Status(status),
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show tasks with this status (pending, completed)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of tasks to show")
	return cmd
}

func printTasks(w io.Writer, out task.ListOutput) {
	if len(out.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks yet.")
		return
	}
	for _, t := range out.Tasks {
		mark := " "
		if t.Status == model.StatusCompleted {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, t.Title)
		if t.DueDate != nil {
			line += " (" + conversation.FormatDueDate(*t.DueDate) + ")"
		}
		fmt.Fprintf(w, "%s  %s\n", line, t.Priority)
	}
	if int64(len(out.Tasks)) < out.Total {
		fmt.Fprintf(w, "... %d of %d shown\n", len(out.Tasks), out.Total)
	}
}
