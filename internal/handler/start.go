package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// handleStart handles /start. The only visible effect is the admin
// notification for a first contact; the user gets no reply.
func (h *Handler) handleStart(c tele.Context) error {
	return h.registry.Track(senderUser(c))
}

// handleText handles any plain text message. It performs the same
// new-user bookkeeping as /start and nothing else.
func (h *Handler) handleText(c tele.Context) error {
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}

	return h.registry.Track(senderUser(c))
}

func senderUser(c tele.Context) domain.User {
	sender := c.Sender()
	return domain.User{UserID: sender.ID, Username: sender.Username}
}
