package telegram

import (
	"fmt"

	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// Transport adapts a telebot bot to the domain.Transport interface and
// translates the two transport failures the workflows care about into
// domain sentinels.
type Transport struct {
	bot *tele.Bot
}

// NewTransport wraps bot.
func NewTransport(bot *tele.Bot) *Transport {
	return &Transport{bot: bot}
}

// rawRecipient lets configured admin entries (numeric IDs or @handles)
// be used as Telegram recipients verbatim.
type rawRecipient string

func (r rawRecipient) Recipient() string { return string(r) }

// SendMessage delivers text to a user chat.
func (t *Transport) SendMessage(userID int64, text string) error {
	_, err := t.bot.Send(tele.ChatID(userID), text)
	return mapError(err)
}

// SendTo delivers text to a raw recipient string.
func (t *Transport) SendTo(target string, text string) error {
	_, err := t.bot.Send(rawRecipient(target), text)
	return mapError(err)
}

// ChatInfo looks up the direct chat with userID.
func (t *Transport) ChatInfo(userID int64) (domain.ChatInfo, error) {
	chat, err := t.bot.ChatByID(userID)
	if err != nil {
		return domain.ChatInfo{}, mapError(err)
	}
	return domain.ChatInfo{ID: chat.ID, Username: chat.Username}, nil
}

// mapError rewrites the recognized telebot errors into domain
// sentinels and leaves everything else untouched.
func mapError(err error) error {
	switch err {
	case nil:
		return nil
	case tele.ErrBlockedByUser:
		return fmt.Errorf("%w: %v", domain.ErrBlocked, err)
	case tele.ErrChatNotFound:
		return fmt.Errorf("%w: %v", domain.ErrChatNotFound, err)
	default:
		return err
	}
}
