package auth

import (
	"sync"
	"time"
)

// Token is an OAuth2 access token with its computed expiry.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`

	// ExpiresAt is computed from ExpiresIn when the token is received.
	ExpiresAt time.Time `json:"-"`
}

// IsValid reports whether the token is usable: non-empty and not within
// buffer of its expiry. A zero ExpiresAt means the token never expires.
func (t *Token) IsValid(buffer time.Duration) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(buffer).Before(t.ExpiresAt)
}

// tokenStore holds the current token behind a lock; the HTTP layer reads
// tokens concurrently with refreshes.
type tokenStore struct {
	mu    sync.RWMutex
	token *Token
}

func (s *tokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *tokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}
