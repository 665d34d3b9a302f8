package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		admins   []string
		userID   int64
		expected bool
	}{
		{
			name:     "numeric admin entry matches",
			admins:   []string{"123456"},
			userID:   123456,
			expected: true,
		},
		{
			name:     "non-admin id",
			admins:   []string{"123456"},
			userID:   654321,
			expected: false,
		},
		{
			name:     "handle entries never match numeric ids",
			admins:   []string{"@operator"},
			userID:   123456,
			expected: false,
		},
		{
			name:     "empty admin list",
			admins:   nil,
			userID:   123456,
			expected: false,
		},
		{
			name:     "mixed list",
			admins:   []string{"@operator", "99", "123456"},
			userID:   99,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(tt.admins)
			assert.Equal(t, tt.expected, service.IsAdmin(tt.userID))
		})
	}
}

func TestAuthService_AdminsKeepsOrder(t *testing.T) {
	admins := []string{"@second", "@first", "42"}
	service := NewAuthService(admins)
	assert.Equal(t, admins, service.Admins())
}
