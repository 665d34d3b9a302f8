package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/akolotov/blockscout-mini-bot/internal/config"
	"github.com/akolotov/blockscout-mini-bot/internal/handler"
	"github.com/akolotov/blockscout-mini-bot/internal/referrals"
	"github.com/akolotov/blockscout-mini-bot/internal/repository/jsonfile"
	"github.com/akolotov/blockscout-mini-bot/internal/service"
	"github.com/akolotov/blockscout-mini-bot/internal/telegram"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting referral relay bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("admins", len(cfg.Admins)),
		zap.String("user_db", cfg.UserDBPath),
	)

	// Load the persisted set of known user IDs
	store, err := jsonfile.New(cfg.UserDBPath)
	if err != nil {
		logger.Fatal("Failed to load user store", zap.Error(err))
	}

	logger.Info("User store loaded", zap.Int("known_users", store.Len()))

	// Initialize Telegram bot. OnError keeps one failing update from
	// taking down the poller loop.
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil {
				if sender := c.Sender(); sender != nil {
					fields = append(fields, zap.Int64("user_id", sender.ID))
				}
				fields = append(fields, zap.String("text", c.Text()))
			}
			logger.Error("Handler error", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	transport := telegram.NewTransport(bot)
	api := referrals.NewClient(cfg.ReferralsURL)
	authService := service.NewAuthService(cfg.Admins)
	registryService := service.NewRegistryService(store, transport, authService, logger)
	broadcastService := service.NewBroadcastService(api, transport, authService, cfg.BroadcastRate, logger)
	statsService := service.NewStatsService(api, transport, logger)

	// Initialize handler
	h := handler.NewHandler(bot, authService, registryService, broadcastService, statsService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}
