package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/model"
	pkgErrors "voice-task-assistant/pkg/errors"
	"voice-task-assistant/pkg/response"
	"voice-task-assistant/pkg/scope"
)

// processScope returns the authenticated caller.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, *time.Time, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	due, err := h.parseDueDate(req.DueDate)
	return req, due, err
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, *time.Time, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, nil, errMissingID
	}

	if req.DueDate == nil {
		return req, nil, nil
	}
	due, err := h.parseDueDate(*req.DueDate)
	return req, due, err
}

// parseDueDate accepts YYYY-MM-DD, an RFC3339 timestamp (truncated to its day)
// or a relative phrase. Empty input means no date.
func (h *handler) parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation(response.DateFormat, raw, h.dates.Location()); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		day := h.dates.StartOfDay(t)
		return &day, nil
	}
	t, err := h.dates.Parse(raw, h.now())
	if err != nil {
		return nil, errInvalidDueDate
	}
	return &t, nil
}
