package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/conversation"
	"voice-task-assistant/internal/model"
	pkgResponse "voice-task-assistant/pkg/response"
	pkgTelegram "voice-task-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and processes the message in the background.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.validSecret(c.GetHeader(secretHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected update with invalid secret")
		pkgResponse.Error(c, errInvalidSecret, nil)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if !h.async {
		h.handle(msg)
	} else {
		go h.handle(msg)
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) handle(msg *pkgTelegram.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		_ = h.bot.SendMessage(ctx, msg.Chat.ID, msgFailed)
	}
}

func (h *handler) validSecret(got string) bool {
	if h.secretToken == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) == 1
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	if msg.Voice != nil && msg.Text == "" {
		return h.bot.SendMessage(ctx, chatID, msgVoiceNote)
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	switch command(text) {
	case cmdHelp:
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case cmdReset:
		if err := h.uc.Reset(ctx, sc); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, msgReset)
	case cmdStart:
		if err := h.uc.Reset(ctx, sc); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, chatID, conversation.MsgGreeting)
	}

	reply, err := h.uc.Respond(ctx, sc, text)
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, formatReply(reply))
}

// command returns the bot command of text without a trailing @botname.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

func formatReply(r assistant.Reply) string {
	if len(r.SavedTasks) == 0 {
		return r.Message
	}

	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString("\n\n")
	b.WriteString(msgSavedTitle)
	for _, t := range r.SavedTasks {
		b.WriteString("\n• ")
		b.WriteString(t.Title)
	}
	return b.String()
}
