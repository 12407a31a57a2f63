// Package token issues and verifies the signed bearer tokens used by the
// HTTP API. Tokens are HS256 JWTs carrying the user identity and role set.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claims
// validation, including expiry.
var ErrInvalidToken = errors.New("token is invalid")

// Claims carries the authenticated identity extracted from a verified token.
type Claims struct {
	UserID   kernel.UUID
	Username string
	Roles    []user.Role
}

// HasRole reports whether the token grants the given role.
func (c Claims) HasRole(role user.Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Manager signs and verifies bearer tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager. The secret must not be empty and the
// ttl must be positive.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

type jwtClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the user, valid for the configured ttl.
func (m *Manager) Issue(userID kernel.UUID, username string, roles []user.Role) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	now := time.Now().UTC()
	claims := jwtClaims{
		Username: username,
		Roles:    names,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string, returning the identity claims.
// Expired or tampered tokens fail with ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (Claims, error) {
	var parsed jwtClaims

	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	roles := make([]user.Role, 0, len(parsed.Roles))
	for _, name := range parsed.Roles {
		role, roleErr := user.RoleFromString(name)
		if roleErr != nil {
			return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, roleErr)
		}
		roles = append(roles, role)
	}

	return Claims{
		UserID:   userID,
		Username: parsed.Username,
		Roles:    roles,
	}, nil
}
