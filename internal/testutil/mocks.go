package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// MockUserStore is a mock for repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Contains(userID int64) bool {
	args := m.Called(userID)
	return args.Bool(0)
}

func (m *MockUserStore) Record(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserStore) Len() int {
	args := m.Called()
	return args.Int(0)
}

// MockTransport is a mock for domain.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) SendMessage(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}

func (m *MockTransport) SendTo(target string, text string) error {
	args := m.Called(target, text)
	return args.Error(0)
}

func (m *MockTransport) ChatInfo(userID int64) (domain.ChatInfo, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.ChatInfo), args.Error(1)
}

// MockTeleContext is a mock for telebot's Context. Only the methods
// the handlers touch are wired up; calling anything else hits the
// embedded nil interface and panics, which is what a test wants.
type MockTeleContext struct {
	tele.Context
	mock.Mock
}

func (m *MockTeleContext) Sender() *tele.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*tele.User)
}

func (m *MockTeleContext) Text() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTeleContext) Args() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockTeleContext) Send(what interface{}, opts ...interface{}) error {
	args := m.Called(what)
	return args.Error(0)
}

// MockReferralsAPI is a mock for service.ReferralsAPI
type MockReferralsAPI struct {
	mock.Mock
}

func (m *MockReferralsAPI) AudienceIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReferralsAPI) Partners(ctx context.Context, start, end time.Time) ([]int64, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReferralsAPI) Referrals(ctx context.Context, partnerID int64, start, end time.Time) ([]int64, error) {
	args := m.Called(ctx, partnerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
