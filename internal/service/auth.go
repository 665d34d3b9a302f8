package service

import "strconv"

// AuthService answers whether an identity belongs to a configured
// administrator. Admin entries are kept as raw strings (@handles or
// numeric IDs) and numeric identities are compared in string form.
type AuthService struct {
	admins []string
	lookup map[string]struct{}
}

// NewAuthService creates an auth service from the configured admin list.
func NewAuthService(admins []string) *AuthService {
	lookup := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		lookup[a] = struct{}{}
	}
	return &AuthService{admins: admins, lookup: lookup}
}

// IsAdmin reports whether userID matches a configured admin entry.
func (s *AuthService) IsAdmin(userID int64) bool {
	_, ok := s.lookup[strconv.FormatInt(userID, 10)]
	return ok
}

// Admins returns the configured admin entries in configuration order.
func (s *AuthService) Admins() []string {
	return s.admins
}
