// pkg/mem/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers signed-out session tokens until they would
// have expired anyway, so a token handed to sign-out stops working.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)

	// IsRevoked reports whether token was signed out and is still
	// within its original lifetime.
	IsRevoked(token string) bool
}

type revokedEntry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]revokedEntry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]revokedEntry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// expired entries piggyback on writes; no background janitor
	now := time.Now()
	for t, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, t)
		}
	}

	s.data[token] = revokedEntry{expiresAt: now.Add(ttl)}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok {
		return false
	}
	return time.Now().Before(e.expiresAt)
}
