package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/service"
)

const refusalMessage = "Sorry, you don't have permission to use this command."

// AdminOnly guards privileged commands. Non-admin senders get a fixed
// refusal and the wrapped handler never runs, so no side effects or
// external calls happen on their behalf.
func AdminOnly(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !authService.IsAdmin(userID) {
				logger.Info("Refused privileged command",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send(refusalMessage)
			}

			return next(c)
		}
	}
}
