package testutil

import (
	"go.uber.org/zap"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestChatInfo creates chat metadata for a test user
func NewTestChatInfo(userID int64, username string) domain.ChatInfo {
	return domain.ChatInfo{
		ID:       userID,
		Username: username,
	}
}
