package telegram

import (
	"net/http"

	pkgErrors "voice-task-assistant/pkg/errors"
)

var errInvalidSecret = pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid webhook secret")
