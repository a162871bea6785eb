package scope

import (
	"context"

	"voice-task-assistant/internal/model"
)

type scopeCtxKey struct{}

// SetScopeToContext stores the caller identity in ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the identity stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok && sc.UserID != ""
}
