package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/service"
	"github.com/akolotov/blockscout-mini-bot/internal/testutil"
)

func TestAdminOnly_NonAdminRefused(t *testing.T) {
	c := new(testutil.MockTeleContext)
	c.On("Sender").Return(&tele.User{ID: 555, Username: "stranger"})
	c.On("Text").Return("/news hello")
	c.On("Send", "Sorry, you don't have permission to use this command.").Return(nil)

	nextCalled := false
	next := func(c tele.Context) error {
		nextCalled = true
		return nil
	}

	guard := AdminOnly(service.NewAuthService([]string{"123456"}), testutil.NewTestLogger())
	err := guard(next)(c)

	assert.NoError(t, err)
	assert.False(t, nextCalled, "wrapped handler must not run for non-admins")
	c.AssertExpectations(t)
}

func TestAdminOnly_AdminPassesThrough(t *testing.T) {
	c := new(testutil.MockTeleContext)
	c.On("Sender").Return(&tele.User{ID: 123456})

	nextCalled := false
	next := func(c tele.Context) error {
		nextCalled = true
		return nil
	}

	guard := AdminOnly(service.NewAuthService([]string{"123456"}), testutil.NewTestLogger())
	err := guard(next)(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
	c.AssertNotCalled(t, "Send", mock.Anything)
}

func TestAdminOnly_HandleEntriesNeverAuthorizeNumericIDs(t *testing.T) {
	c := new(testutil.MockTeleContext)
	c.On("Sender").Return(&tele.User{ID: 555, Username: "operator"})
	c.On("Text").Return("/stats 5")
	c.On("Send", "Sorry, you don't have permission to use this command.").Return(nil)

	nextCalled := false
	next := func(c tele.Context) error {
		nextCalled = true
		return nil
	}

	// "@operator" is a handle entry; the sender's numeric ID is what
	// gets compared, so the command is refused.
	guard := AdminOnly(service.NewAuthService([]string{"@operator"}), testutil.NewTestLogger())
	err := guard(next)(c)

	assert.NoError(t, err)
	assert.False(t, nextCalled)
	c.AssertExpectations(t)
}
