package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNgrokURL(t *testing.T) {
	t.Run("prefers https tunnel", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURLWith(context.Background(), ts.URL, 1, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "https://a.ngrok.io", got)
	})

	t.Run("waits for a tunnel to appear", func(t *testing.T) {
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURLWith(context.Background(), ts.URL, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "http://b.ngrok.io", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer ts.Close()

		_, err := detectNgrokURLWith(context.Background(), ts.URL, 2, time.Millisecond)
		assert.Error(t, err)

		_, err = detectNgrokURLWith(context.Background(), "http://127.0.0.1:1", 2, time.Millisecond)
		assert.Error(t, err)
	})
}
