package scope

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-assistant/internal/model"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := New("s3cret", time.Hour)

	token, err := m.CreateToken(model.Scope{UserID: "u1", Username: "alice"})
	require.NoError(t, err)

	sc, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.Scope{UserID: "u1", Username: "alice"}, sc)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := New("s3cret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := New("other", time.Hour).CreateToken(model.Scope{UserID: "u1"})
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := &jwtManager{secret: []byte("s3cret"), ttl: time.Minute, now: func() time.Time {
			return time.Now().Add(-time.Hour)
		}}
		token, err := old.CreateToken(model.Scope{UserID: "u1"})
		require.NoError(t, err)
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no user", func(t *testing.T) {
		_, err := m.CreateToken(model.Scope{})
		assert.ErrorIs(t, err, ErrMissingUser)
	})
}

func TestNew_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() { New("", time.Hour) })
}

func TestScopeContext(t *testing.T) {
	_, ok := GetScopeFromContext(context.Background())
	assert.False(t, ok)

	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u1"})
	sc, ok := GetScopeFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", sc.UserID)
}
