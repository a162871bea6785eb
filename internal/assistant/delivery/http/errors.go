package http

import (
	"errors"

	"voice-task-assistant/internal/assistant"
	pkgErrors "voice-task-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrNoUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
