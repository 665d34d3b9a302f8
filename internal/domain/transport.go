package domain

import "errors"

// Transport-level failure kinds the bot distinguishes. Anything else
// coming out of the chat platform is left as-is for the caller.
var (
	// ErrBlocked means the user has blocked the bot.
	ErrBlocked = errors.New("bot is blocked by user")
	// ErrChatNotFound means there is no direct chat with the user.
	ErrChatNotFound = errors.New("chat not found")
)

// Transport abstracts the chat platform client.
type Transport interface {
	// SendMessage delivers text to a user by numeric ID.
	SendMessage(userID int64, text string) error
	// SendTo delivers text to a raw recipient string, either a
	// numeric ID or an @handle as configured for admins.
	SendTo(target string, text string) error
	// ChatInfo looks up the direct chat with a user. Returns
	// ErrBlocked or ErrChatNotFound for the recognized failure kinds.
	ChatInfo(userID int64) (ChatInfo, error)
}
