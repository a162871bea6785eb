package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "voice-task-assistant/internal/assistant/delivery/http"
	assistantTelegram "voice-task-assistant/internal/assistant/delivery/telegram"
	assistantUC "voice-task-assistant/internal/assistant/usecase"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/middleware"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/taskparser"
)

// setupAssistantDomain wires the conversation engine over the task use case
// and registers /api/v1/assistant plus the Telegram webhook when a bot is set.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	engine := conversation.New(taskparser.New(srv.dates))
	uc := assistantUC.New(srv.l, engine, srv.sessions, tasks,
		assistantUC.WithMetrics(assistantUC.NewMetrics(srv.registry)),
	)

	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return
	}
	tg := assistantTelegram.New(srv.l, uc, srv.telegramBot, srv.telegramSecret)
	srv.gin.POST("/webhook/telegram", tg.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
