package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	Admins        []string
	ReferralsURL  string
	UserDBPath    string
	BroadcastRate int
}

const (
	defaultUserDBPath    = "user_ids.json"
	defaultBroadcastRate = 10
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		Admins:        parseAdmins(os.Getenv("BOT_ADMINS")),
		ReferralsURL:  strings.TrimRight(os.Getenv("REFERRALS_REST_URL"), "/"),
		UserDBPath:    getEnv("USER_DB", defaultUserDBPath),
		BroadcastRate: defaultBroadcastRate,
	}

	if v := os.Getenv("BROADCAST_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("BROADCAST_RATE must be a positive integer, got %q", v)
		}
		cfg.BroadcastRate = rate
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.ReferralsURL == "" {
		return nil, fmt.Errorf("REFERRALS_REST_URL is required")
	}

	return cfg, nil
}

// parseAdmins splits the comma-separated admin list, dropping empty entries.
func parseAdmins(raw string) []string {
	var admins []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			admins = append(admins, part)
		}
	}
	return admins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
