package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/referrals"
)

// handleNews handles /news <text>: broadcasts the text to the full
// audience and reports the delivered count back to the admin.
func (h *Handler) handleNews(c tele.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args(), " "))
	if text == "" {
		return c.Send("Please provide a news message after the /news command.")
	}

	h.logger.Info("Broadcast requested",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("text_len", len(text)),
	)

	res, err := h.broadcast.Broadcast(context.Background(), text)
	if err != nil {
		var statusErr *referrals.StatusError
		if errors.As(err, &statusErr) {
			return c.Send(fmt.Sprintf("Failed to fetch user IDs. Status code: %d", statusErr.Status))
		}
		// Unclassified transport failure: let the poller's error hook
		// log it, this invocation is lost.
		return err
	}

	return c.Send(fmt.Sprintf("News broadcast sent to %d users.", res.Delivered))
}
