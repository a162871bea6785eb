package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"voice-task-assistant/config"
)

const defaultCredentialsPath = "google-credentials.json"

// calendarAuthCmd runs the OAuth desktop flow once and stores the token
// where the task service expects it.
func calendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save the token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			credsPath := cfg.GoogleCalendar.CredentialsPath
			if len(args) == 1 {
				credsPath = args[0]
			}
			if credsPath == "" {
				credsPath = defaultCredentialsPath
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
			if err != nil {
				return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && code == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(cfg.GoogleCalendar.TokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("create %s: %w", cfg.GoogleCalendar.TokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", cfg.GoogleCalendar.TokenPath, err)
			}
			fmt.Fprintf(out, "\nToken saved to %s. Restart the API server to enable calendar sync.\n", cfg.GoogleCalendar.TokenPath)
			return nil
		},
	}
}
