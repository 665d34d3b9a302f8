package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseAdmins(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: nil,
		},
		{
			name:     "single admin",
			raw:      "123456",
			expected: []string{"123456"},
		},
		{
			name:     "mixed handles and ids",
			raw:      "@operator,123456",
			expected: []string{"@operator", "123456"},
		},
		{
			name:     "spaces and empty entries",
			raw:      " @operator , ,123456, ",
			expected: []string{"@operator", "123456"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAdmins(tt.raw))
		})
	}
}

func TestLoad(t *testing.T) {
	setEnv := func(t *testing.T, vars map[string]string) {
		t.Helper()
		for _, key := range []string{"BOT_TOKEN", "BOT_ADMINS", "REFERRALS_REST_URL", "USER_DB", "BROADCAST_RATE"} {
			os.Unsetenv(key)
		}
		for key, value := range vars {
			t.Setenv(key, value)
		}
	}

	t.Run("missing BOT_TOKEN", func(t *testing.T) {
		setEnv(t, map[string]string{
			"REFERRALS_REST_URL": "http://localhost:8080",
		})

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("missing REFERRALS_REST_URL", func(t *testing.T) {
		setEnv(t, map[string]string{
			"BOT_TOKEN": "test_token",
		})

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "REFERRALS_REST_URL")
	})

	t.Run("defaults applied", func(t *testing.T) {
		setEnv(t, map[string]string{
			"BOT_TOKEN":          "test_token",
			"REFERRALS_REST_URL": "http://localhost:8080",
		})

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "test_token", cfg.BotToken)
		assert.Empty(t, cfg.Admins)
		assert.Equal(t, "user_ids.json", cfg.UserDBPath)
		assert.Equal(t, 10, cfg.BroadcastRate)
	})

	t.Run("full configuration", func(t *testing.T) {
		setEnv(t, map[string]string{
			"BOT_TOKEN":          "test_token",
			"BOT_ADMINS":         "@operator,123456",
			"REFERRALS_REST_URL": "http://referrals.internal/api/",
			"USER_DB":            "/var/lib/bot/users.json",
			"BROADCAST_RATE":     "25",
		})

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, []string{"@operator", "123456"}, cfg.Admins)
		assert.Equal(t, "http://referrals.internal/api", cfg.ReferralsURL)
		assert.Equal(t, "/var/lib/bot/users.json", cfg.UserDBPath)
		assert.Equal(t, 25, cfg.BroadcastRate)
	})

	t.Run("invalid BROADCAST_RATE", func(t *testing.T) {
		setEnv(t, map[string]string{
			"BOT_TOKEN":          "test_token",
			"REFERRALS_REST_URL": "http://localhost:8080",
			"BROADCAST_RATE":     "fast",
		})

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BROADCAST_RATE")
	})
}
