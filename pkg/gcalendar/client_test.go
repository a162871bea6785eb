package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("unsupported format", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), gcalendar.Options{})
		assert.Error(t, err)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), gcalendar.Options{TokenPath: filepath.Join(dir, "missing.json")})
		assert.Error(t, err)
	})

	t.Run("installed app with token", func(t *testing.T) {
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600))
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), gcalendar.Options{TokenPath: tokenPath})
		assert.NoError(t, err)
	})

	t.Run("installed app with broken token", func(t *testing.T) {
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600))
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), gcalendar.Options{TokenPath: tokenPath})
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), gcalendar.Options{})
		assert.Error(t, err)
	})
}

func TestClientEvents(t *testing.T) {
	var inserted map[string]any
	var deletedPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/calendars/work/events"):
			json.NewDecoder(r.Body).Decode(&inserted)
			w.Write([]byte(`{"id":"evt-1","summary":"Dentist"}`))
		case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/events/gone"):
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error":{"code":410,"message":"deleted"}}`))
		case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/events/boom"):
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
		case r.Method == http.MethodDelete:
			deletedPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/events"):
			w.Write([]byte(`{"items":[
				{"id":"a","summary":"All day","start":{"date":"2024-05-02"}},
				{"id":"b","summary":"Timed","start":{"dateTime":"2024-05-02T09:00:00Z"}}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	httpClient := &http.Client{Transport: &rewriteTransport{Transport: http.DefaultTransport, Host: strings.TrimPrefix(ts.URL, "http://")}}
	c, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient, gcalendar.Options{CalendarID: "work"})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("create all-day event", func(t *testing.T) {
		due := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		id, err := c.CreateTaskEvent(ctx, model.Task{ID: "t1", Title: "Dentist", DueDate: &due, Category: "health"})

		require.NoError(t, err)
		assert.Equal(t, "evt-1", id)
		assert.Equal(t, "Dentist", inserted["summary"])
		assert.Equal(t, "Category: health", inserted["description"])
		assert.Equal(t, map[string]any{"date": "2024-05-02"}, inserted["start"])
		assert.Equal(t, map[string]any{"date": "2024-05-03"}, inserted["end"])
	})

	t.Run("create requires due date", func(t *testing.T) {
		_, err := c.CreateTaskEvent(ctx, model.Task{Title: "Someday"})
		assert.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.DeleteEvent(ctx, "evt-1"))
		assert.True(t, strings.HasSuffix(deletedPath, "/calendars/work/events/evt-1"))
		assert.NoError(t, c.DeleteEvent(ctx, "gone"))
		assert.Error(t, c.DeleteEvent(ctx, "boom"))
	})

	t.Run("list", func(t *testing.T) {
		events, err := c.ListEvents(ctx, gcalendar.ListEventsRequest{
			TimeMin:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			TimeMax:    time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
			MaxResults: 10,
		})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "2024-05-02", events[0].Date)
		assert.Equal(t, 9, events[1].StartTime.Hour())
	})
}
