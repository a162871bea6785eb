package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	pkgLog "voice-task-assistant/pkg/log"
)

const processTimeout = 30 * time.Second

// Sender is the subset of the Telegram Bot API the handler replies through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          assistant.UseCase
	bot         Sender
	secretToken string
	async       bool
}

// New creates a new Telegram delivery handler. When secretToken is set every
// update must carry it in the X-Telegram-Bot-Api-Secret-Token header.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
		async:       true,
	}
}
