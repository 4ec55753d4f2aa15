// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

// Package auth implements the single-operator credential check, JWT session
// tokens and the HTTP middleware that enforces them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT payload for an operator session.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

// ErrInvalidToken covers malformed, mis-signed and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and validates HS256 session tokens.
type JWTManager struct {
	secret   []byte
	lifetime time.Duration
	issuer   string

	// now is injectable for expiry tests.
	now func() time.Time
}

// NewJWTManager creates a manager. lifetime bounds how long an issued
// session stays valid.
func NewJWTManager(secret string, lifetime time.Duration) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		lifetime: lifetime,
		issuer:   "homefolio",
		now:      time.Now,
	}
}

// SetClock overrides the manager's clock. Test hook.
func (m *JWTManager) SetClock(now func() time.Time) {
	m.now = now
}

// Lifetime returns the configured session lifetime.
func (m *JWTManager) Lifetime() time.Duration {
	return m.lifetime
}

// GenerateToken issues a signed session token. Returns the token string and
// its expiry time.
func (m *JWTManager) GenerateToken(username, role, avatar string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.lifetime)

	claims := Claims{
		Username: username,
		Role:     role,
		Avatar:   avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a session token, rejecting any signing
// method other than HMAC.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
