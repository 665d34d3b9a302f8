package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/middleware"
	"github.com/akolotov/blockscout-mini-bot/internal/service"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	auth      *service.AuthService
	registry  *service.RegistryService
	broadcast *service.BroadcastService
	stats     *service.StatsService
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	auth *service.AuthService,
	registry *service.RegistryService,
	broadcast *service.BroadcastService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		auth:      auth,
		registry:  registry,
		broadcast: broadcast,
		stats:     stats,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	adminOnly := middleware.AdminOnly(h.auth, h.logger)

	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/news", h.handleNews, adminOnly)
	h.bot.Handle("/stats", h.handleStats, adminOnly)

	h.bot.Handle(tele.OnText, h.handleText)
}
