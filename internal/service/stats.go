package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
	"github.com/akolotov/blockscout-mini-bot/internal/referrals"
)

// StatsService renders the partner/referral report for a time window.
type StatsService struct {
	api       ReferralsAPI
	transport domain.Transport
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(api ReferralsAPI, transport domain.Transport, logger *zap.Logger) *StatsService {
	return &StatsService{
		api:       api,
		transport: transport,
		logger:    logger,
		now:       time.Now,
	}
}

// Report builds the text report for the last minutes minutes. Name
// resolution failures degrade to placeholder lines; a non-200 referral
// fetch degrades to a failure line for that partner. Only the partner
// list fetch aborts the whole report.
func (s *StatsService) Report(ctx context.Context, minutes int) (string, error) {
	end := s.now().UTC()
	start := end.Add(-time.Duration(minutes) * time.Minute)

	partners, err := s.api.Partners(ctx, start, end)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stats for the last %d minutes:\n\n", minutes)

	for _, partnerID := range partners {
		if name, ok := s.resolveName(partnerID); ok {
			fmt.Fprintf(&b, "Partner @%s (ID: %d):\n", name, partnerID)
		} else {
			fmt.Fprintf(&b, "Partner %d (Unable to fetch username):\n", partnerID)
		}

		refs, err := s.api.Referrals(ctx, partnerID, start, end)
		if err != nil {
			var statusErr *referrals.StatusError
			if errors.As(err, &statusErr) {
				fmt.Fprintf(&b, "  Failed to fetch referrals. Status code: %d\n", statusErr.Status)
				continue
			}
			return "", err
		}

		for _, referralID := range refs {
			if name, ok := s.resolveName(referralID); ok {
				fmt.Fprintf(&b, "  - Referral @%s (ID: %d)\n", name, referralID)
			} else {
				fmt.Fprintf(&b, "  - Referral %d (Unable to fetch username)\n", referralID)
			}
		}
	}

	return b.String(), nil
}

// resolveName looks up a display name for userID. Any lookup failure,
// including blocked or missing chats, falls back to the placeholder
// line. An empty username resolves to "user<id>".
func (s *StatsService) resolveName(userID int64) (string, bool) {
	info, err := s.transport.ChatInfo(userID)
	if err != nil {
		s.logger.Info("Unable to resolve username", zap.Int64("user_id", userID), zap.Error(err))
		return "", false
	}
	if info.Username == "" {
		return fmt.Sprintf("user%d", userID), true
	}
	return info.Username, true
}
