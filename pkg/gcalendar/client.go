package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"voice-task-assistant/internal/model"
)

// Client wraps the Google Calendar API service. It mirrors dated tasks as
// all-day events.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts)
}

// NewClientFromCredentialsJSON accepts Service Account JSON, or OAuth installed
// app credentials paired with a token saved at opts.TokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts Options) (*Client, error) {
	opts = withDefaults(opts)

	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, opts, option.WithTokenSource(config.TokenSource(ctx)))
	}

	// Fallback: OAuth2 installed app credentials
	var oauthCreds struct {
		Installed *struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed == nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(opts.TokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a saved token at %s: %w", opts.TokenPath, tokenErr)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", opts.TokenPath, jsonErr)
	}

	return newClient(ctx, opts, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	return newClient(ctx, withDefaults(opts), option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts Options, clientOpt option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, clientOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: opts.CalendarID}, nil
}

func withDefaults(opts Options) Options {
	if opts.CalendarID == "" {
		opts.CalendarID = defaultCalendarID
	}
	if opts.TokenPath == "" {
		opts.TokenPath = defaultTokenPath
	}
	return opts
}

// CreateTaskEvent creates an all-day event on the task's due date and returns its id.
func (c *Client) CreateTaskEvent(ctx context.Context, t model.Task) (string, error) {
	if t.DueDate == nil {
		return "", errors.New("task has no due date")
	}
	day := *t.DueDate

	event := &calendar.Event{
		Summary:     t.Title,
		Description: eventDescription(t),
		Start:       &calendar.EventDateTime{Date: day.Format(allDayFormat)},
		End:         &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(allDayFormat)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{"task_id": t.ID},
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes an event. An event that is already gone is not an error.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.service.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents returns single events between TimeMin and TimeMax ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		ev := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
		}
		if item.Start != nil {
			ev.Date = item.Start.Date
			if item.Start.DateTime != "" {
				ev.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
			}
		}
		events = append(events, ev)
	}
	return events, nil
}

func eventDescription(t model.Task) string {
	desc := t.Description
	if t.Category != "" {
		if desc != "" {
			desc += "\n\n"
		}
		desc += "Category: " + t.Category
	}
	return desc
}
