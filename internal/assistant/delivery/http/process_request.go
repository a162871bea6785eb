package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/model"
	pkgErrors "voice-task-assistant/pkg/errors"
	"voice-task-assistant/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
