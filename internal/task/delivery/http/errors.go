package http

import (
	"errors"
	"net/http"

	"voice-task-assistant/internal/task"
	pkgErrors "voice-task-assistant/pkg/errors"
)

var (
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD or a relative phrase like 'tomorrow'")
	errMissingID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrNoDrafts):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrNoUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
