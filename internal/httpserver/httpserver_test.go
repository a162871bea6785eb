package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/assistant/repository/memory"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task/repository/sqlite"
	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/scope"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*HTTPServer, scope.Manager) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	jwt := scope.New("test-secret", time.Hour)

	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     string(model.EnvironmentDevelopment),
		DB:              db,
		Sessions:        memory.New(100, time.Hour),
		DateMath:        dates,
		JWTManager:      jwt,
		RateLimitPerMin: 600,
	})
	require.NoError(t, err)
	return srv, jwt
}

func call(t *testing.T, srv *HTTPServer, token, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(nil, Config{})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		code, _ := call(t, srv, "", http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	code, _ := call(t, srv, "", http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, srv, "bogus", http.MethodPost, "/api/v1/assistant/messages", `{"text":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestConversationCommitsTask(t *testing.T) {
	srv, jwt := newTestServer(t)
	token, err := jwt.CreateToken(model.Scope{UserID: "u1", Username: "ann"})
	require.NoError(t, err)

	code, env := call(t, srv, token, http.MethodPost, "/api/v1/assistant/messages", `{"text":"Buy groceries tomorrow"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"state":"confirming"`)

	code, env = call(t, srv, token, http.MethodGet, "/api/v1/assistant/session", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"title":"Buy groceries"`)

	code, env = call(t, srv, token, http.MethodPost, "/api/v1/assistant/messages", `{"text":"yes"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"saved_tasks"`)

	code, env = call(t, srv, token, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, code)
	var list struct {
		Tasks []struct {
			Title     string `json:"title"`
			CreatedBy string `json:"created_by"`
		} `json:"tasks"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.EqualValues(t, 1, list.Total)
	assert.Equal(t, "Buy groceries", list.Tasks[0].Title)
	assert.Equal(t, "voice", list.Tasks[0].CreatedBy)

	code, _ = call(t, srv, token, http.MethodDelete, "/api/v1/assistant/session", "")
	assert.Equal(t, http.StatusOK, code)
}
