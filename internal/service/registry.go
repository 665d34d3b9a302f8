package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
	"github.com/akolotov/blockscout-mini-bot/internal/repository"
)

// RegistryService tracks which users have contacted the bot. It is the
// single bookkeeping path shared by the /start handler and the plain
// text handler.
type RegistryService struct {
	store     repository.UserStore
	transport domain.Transport
	auth      *AuthService
	logger    *zap.Logger
}

// NewRegistryService creates a new registry service.
func NewRegistryService(
	store repository.UserStore,
	transport domain.Transport,
	auth *AuthService,
	logger *zap.Logger,
) *RegistryService {
	return &RegistryService{
		store:     store,
		transport: transport,
		auth:      auth,
		logger:    logger,
	}
}

// Track records a previously unseen user and notifies every configured
// admin. Known users are a no-op. A persistence failure is returned to
// the caller; losing durability here means duplicate notifications
// after a restart.
func (s *RegistryService) Track(user domain.User) error {
	if s.store.Contains(user.UserID) {
		return nil
	}

	if err := s.store.Record(user.UserID); err != nil {
		return fmt.Errorf("record user %d: %w", user.UserID, err)
	}

	s.logger.Info("New user connected",
		zap.Int64("user_id", user.UserID),
		zap.String("username", user.Username),
	)

	text := fmt.Sprintf("New user connected: @%s (ID: %d)", user.Username, user.UserID)
	for _, admin := range s.auth.Admins() {
		if err := s.transport.SendTo(admin, text); err != nil {
			s.logger.Warn("Failed to notify admin about new user",
				zap.String("admin", admin),
				zap.Int64("user_id", user.UserID),
				zap.Error(err),
			)
		}
	}
	return nil
}
