package service

import (
	"errors"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// IsReachable reports whether a direct message to userID can currently
// be delivered. A blocked bot or a missing chat means unreachable; any
// other transport failure is returned to the caller, which cannot
// safely interpret it as "unreachable".
func IsReachable(transport domain.Transport, userID int64) (bool, error) {
	_, err := transport.ChatInfo(userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrBlocked):
		return false, nil
	case errors.Is(err, domain.ErrChatNotFound):
		return false, nil
	default:
		return false, err
	}
}
