package scope

import "voice-task-assistant/internal/model"

// Manager issues and verifies identity tokens.
type Manager interface {
	CreateToken(sc model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
}
