package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/pkg/telegram"
)

func TestBot(t *testing.T) {
	var (
		lastWebhook telegram.SetWebhookRequest
		lastDelete  telegram.DeleteWebhookRequest
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasSuffix(path, "/setWebhook"):
			json.NewDecoder(r.Body).Decode(&lastWebhook)
			if lastWebhook.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))

		case strings.HasSuffix(path, "/deleteWebhook"):
			json.NewDecoder(r.Body).Decode(&lastDelete)
			w.Write([]byte(`{"ok": true}`))

		case strings.HasSuffix(path, "/sendMessage"):
			var req telegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 403, "description": "bot was blocked by the user"}`))
				return
			}
			if req.Text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook sends secret and filter", func(t *testing.T) {
		require.NoError(t, bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret"))
		assert.Equal(t, "s3cret", lastWebhook.SecretToken)
		assert.Equal(t, []string{"message"}, lastWebhook.AllowedUpdates)
	})

	t.Run("SetWebhook API failure", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid url")
	})

	t.Run("DeleteWebhook drops pending updates", func(t *testing.T) {
		require.NoError(t, bot.DeleteWebhook(ctx))
		assert.True(t, lastDelete.DropPendingUpdates)
	})

	t.Run("SendMessage", func(t *testing.T) {
		assert.NoError(t, bot.SendMessage(ctx, 12345, "Hello"))
		assert.NoError(t, bot.SendMessageWithMode(ctx, 12345, "*Hello*", "Markdown"))
	})

	t.Run("SendMessage API failure", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api error 403: bot was blocked by the user")
	})

	t.Run("SendMessage empty 500 body", func(t *testing.T) {
		assert.Error(t, bot.SendMessage(ctx, 12345, "cause_500"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, bot.SendMessage(cctx, 12345, "Hello"))
	})

	t.Run("unreachable host", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://127.0.0.1:1")
		assert.Error(t, badBot.SendMessage(ctx, 12345, "fail"))
	})
}
