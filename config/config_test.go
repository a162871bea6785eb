package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for k, v := range env {
		t.Setenv(k, v)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{"JWT_SECRET": "s"})

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
	assert.Equal(t, "UTC", cfg.Assistant.Timezone)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"JWT_SECRET":         "s",
		"HTTP_SERVER_PORT":   "9090",
		"SESSION_BACKEND":    "Redis",
		"REDIS_ADDR":         "localhost:6379",
		"SESSION_TTL":        "5m",
		"ASSISTANT_TIMEZONE": "Asia/Ho_Chi_Minh",
		"TELEGRAM_BOT_TOKEN": "tg",
	})

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Assistant.Timezone)
	assert.Equal(t, "tg", cfg.Telegram.BotToken)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown session backend", map[string]string{"JWT_SECRET": "s", "SESSION_BACKEND": "etcd"}},
		{"redis without addr", map[string]string{"JWT_SECRET": "s", "SESSION_BACKEND": "redis"}},
		{"non-positive ttl", map[string]string{"JWT_SECRET": "s", "SESSION_TTL": "0s"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.env)
			assert.Error(t, err)
		})
	}
}

func TestRequireJWT(t *testing.T) {
	cfg, err := load(t, map[string]string{"JWT_SECRET": ""})
	require.NoError(t, err)
	assert.Error(t, cfg.RequireJWT())

	cfg.JWT.Secret = "s"
	assert.NoError(t, cfg.RequireJWT())
}
