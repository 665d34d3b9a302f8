package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/akolotov/blockscout-mini-bot/internal/domain"
)

// ReferralsAPI is the narrow contract to the external referrals
// service consumed by the broadcast and statistics workflows.
type ReferralsAPI interface {
	AudienceIDs(ctx context.Context) ([]int64, error)
	Partners(ctx context.Context, start, end time.Time) ([]int64, error)
	Referrals(ctx context.Context, partnerID int64, start, end time.Time) ([]int64, error)
}

// BroadcastResult tallies one broadcast invocation. It is never persisted.
type BroadcastResult struct {
	Attempted int
	Delivered int
	Skipped   int
	Failed    int
}

// BroadcastService sends a news message to the audience reported by
// the referrals service.
type BroadcastService struct {
	api       ReferralsAPI
	transport domain.Transport
	auth      *AuthService
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewBroadcastService creates a broadcast service. messagesPerSecond
// bounds the send fan-out; values <= 0 disable limiting.
func NewBroadcastService(
	api ReferralsAPI,
	transport domain.Transport,
	auth *AuthService,
	messagesPerSecond int,
	logger *zap.Logger,
) *BroadcastService {
	var limiter *rate.Limiter
	if messagesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(messagesPerSecond), messagesPerSecond)
	}
	return &BroadcastService{
		api:       api,
		transport: transport,
		auth:      auth,
		limiter:   limiter,
		logger:    logger,
	}
}

// Broadcast fetches the audience and sends text to every non-admin
// recipient that is currently reachable. Per-recipient failures are
// logged and never abort the batch; only the audience fetch and an
// unclassified reachability failure do.
func (s *BroadcastService) Broadcast(ctx context.Context, text string) (BroadcastResult, error) {
	var res BroadcastResult

	ids, err := s.api.AudienceIDs(ctx)
	if err != nil {
		return res, err
	}

	recipients := dedupeSorted(ids)
	s.logger.Info("Starting broadcast",
		zap.Int("audience", len(recipients)),
		zap.Int("raw_audience", len(ids)),
	)

	message := "📢 News: " + text
	for _, id := range recipients {
		if s.auth.IsAdmin(id) {
			continue
		}

		reachable, err := IsReachable(s.transport, id)
		if err != nil {
			return res, err
		}
		if !reachable {
			res.Skipped++
			s.logger.Info("Skipping unreachable user", zap.Int64("user_id", id))
			continue
		}

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return res, err
			}
		}

		res.Attempted++
		if err := s.transport.SendMessage(id, message); err != nil {
			res.Failed++
			if errors.Is(err, domain.ErrBlocked) {
				s.logger.Error("Failed to send news, user has blocked the bot", zap.Int64("user_id", id))
			} else {
				s.logger.Error("Failed to send news", zap.Int64("user_id", id), zap.Error(err))
			}
			continue
		}

		res.Delivered++
		s.logger.Info("Sent news to user", zap.Int64("user_id", id))
	}

	s.logger.Info("Broadcast finished",
		zap.Int("delivered", res.Delivered),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
	)
	return res, nil
}

// dedupeSorted collapses duplicates and returns IDs in ascending
// order. The service can report the same ID more than once; order is
// not part of the contract, sorting just keeps runs reproducible.
func dedupeSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
