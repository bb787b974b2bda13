// pkg/auth/jwt.go
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenBlacklisted = errors.New("token is blacklisted")

type Claims struct {
	Email      string `json:"email"`
	CustomerID string `json:"customer_id"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 customer tokens and remembers logged-out ones.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu        sync.RWMutex
	blacklist map[string]time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, blacklist: make(map[string]time.Time)}
}

func (m *Manager) GenerateToken(email, customerID string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:      email,
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   customerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) ValidateToken(tokenStr string) (*Claims, error) {
	m.mu.RLock()
	_, revoked := m.blacklist[tokenStr]
	m.mu.RUnlock()
	if revoked {
		return nil, ErrTokenBlacklisted
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Revoke blacklists a token until its own expiry.
func (m *Manager) Revoke(tokenStr string) {
	expires := time.Now().Add(m.ttl)
	if c, err := Inspect(tokenStr); err == nil && c.ExpiresAt != nil {
		expires = c.ExpiresAt.Time
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for t, exp := range m.blacklist {
		if now.After(exp) {
			delete(m.blacklist, t)
		}
	}
	m.blacklist[tokenStr] = expires
}

// Inspect decodes a token's claims without verifying its signature.
// It is meant for diagnostics only and must not gate access.
func Inspect(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
