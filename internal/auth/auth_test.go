package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/niteshvshukla2026-sudo/event-task-management/config"
	"github.com/niteshvshukla2026-sudo/event-task-management/internal/entities"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   ttl,
		BcryptCost: 4,
	})
}

func TestPasswordRoundtrip(t *testing.T) {
	m := newTestManager(time.Hour)

	hash, err := m.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, m.CheckPassword(hash, "s3cret"))
	require.False(t, m.CheckPassword(hash, "wrong"))
}

func TestTokenRoundtrip(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.IssueToken("u1", entities.RoleAdmin)
	require.NoError(t, err)

	caller, err := m.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", caller.UserID)
	require.Equal(t, entities.RoleAdmin, caller.Role)
}

func TestTokenExpired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.IssueToken("u1", entities.RoleUser)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestTokenTampered(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour, BcryptCost: 4})

	token, err := other.IssueToken("u1", entities.RoleUser)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}
