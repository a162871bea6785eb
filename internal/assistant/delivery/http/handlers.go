package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/pkg/response"
)

// Respond godoc
// @Summary     Send an utterance to the assistant
// @Description Advances the caller's task-creation conversation by one turn. Confirmed drafts are saved as tasks.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body messageReq true "Transcribed or typed text"
// @Success     200  {object} replyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Respond(ctx, sc, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}

// Current godoc
// @Summary     Get the conversation state
// @Description Returns the caller's current state and any drafts awaiting confirmation.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} replyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/session [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Current(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReplyResp(reply))
}

// Reset godoc
// @Summary     Reset the conversation
// @Description Discards every draft and returns the conversation to its greeting.
// @Tags        Assistant
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/session [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
