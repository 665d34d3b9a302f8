package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/referrals"
)

const statsUsageMessage = "Please provide the number of minutes after the /stats command."

// handleStats handles /stats <minutes>: renders the partner/referral
// report for the last <minutes> minutes.
func (h *Handler) handleStats(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 || !isDigits(args[0]) {
		return c.Send(statsUsageMessage)
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return c.Send(statsUsageMessage)
	}

	h.logger.Info("Stats requested",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("minutes", minutes),
	)

	report, err := h.stats.Report(context.Background(), minutes)
	if err != nil {
		var statusErr *referrals.StatusError
		if errors.As(err, &statusErr) {
			return c.Send(fmt.Sprintf("Failed to fetch partners. Status code: %d", statusErr.Status))
		}
		return err
	}

	return c.Send(report)
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
