// Package token persists the bearer token the API client attaches to
// outbound requests.
package token

import (
	"context"
	"strings"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Store holds at most one bearer token for the signed-in operator.
type Store interface {
	// Save persists the token, replacing any previous one.
	Save(ctx context.Context, token string) error
	// Token returns the persisted token, or "" when none is usable.
	Token(ctx context.Context) (string, error)
	// Clear drops the persisted token.
	Clear(ctx context.Context) error
}

// usable rejects blank tokens and JWTs whose exp claim has passed. The
// client has no verification key, so claims are read unverified; an expired
// token is treated as absent rather than sent to be refused.
func usable(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens are fine, the server decides.
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// MemoryStore keeps the token in process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty in-process token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists the token.
func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Token returns the persisted token when still usable.
func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !usable(s.token) {
		return "", nil
	}
	return s.token, nil
}

// Clear drops the token.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
