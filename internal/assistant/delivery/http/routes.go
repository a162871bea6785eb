package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/middleware"
)

// RegisterRoutes maps the conversation endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/assistant", mw.Auth(), mw.RateLimit())
	{
		a.POST("/messages", h.Respond)
		a.GET("/session", h.Current)
		a.DELETE("/session", h.Reset)
	}
}
