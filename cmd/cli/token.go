package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-task-assistant/config"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/pkg/scope"
)

func tokenCmd(opts *globalOptions) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for --user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.RequireJWT(); err != nil {
				return err
			}

			if username == "" {
				username = opts.user
			}
			tok, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL).CreateToken(model.Scope{
				UserID:   opts.user,
				Username: username,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Display name stored in the token (defaults to --user)")
	return cmd
}
