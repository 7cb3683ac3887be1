// Package auth implements password hashing and bearer-token identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/niteshvshukla2026-sudo/event-task-management/config"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

// Manager issues and verifies tokens and hashes passwords.
type Manager struct {
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewManager constructs a Manager from auth configuration.
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// HashPassword returns the bcrypt hash of a plaintext password.
func (m *Manager) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password with a stored hash.
func (m *Manager) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a token carrying the user id and role.
func (m *Manager) IssueToken(userID string, role entities.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a token and resolves the caller identity.
func (m *Manager) VerifyToken(tokenStr string) (entities.AuthContext, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.AuthContext{}, entities.ErrUnauthorized
	}

	role := entities.Role(c.Role)
	if c.Subject == "" || !role.Valid() {
		return entities.AuthContext{}, entities.ErrUnauthorized
	}

	return entities.AuthContext{UserID: c.Subject, Role: role}, nil
}
