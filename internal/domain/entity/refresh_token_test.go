package entity_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

func TestIssueRefreshToken(t *testing.T) {
	userID := entity.GenerateUserID()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("mints an unrevoked token with 30 day expiry", func(t *testing.T) {
		tok, err := entity.IssueRefreshToken(userID, now)
		require.NoError(t, err)
		assert.True(t, tok.UserID.Equals(userID))
		assert.False(t, tok.Revoked)
		assert.Equal(t, now.Add(30*24*time.Hour), tok.ExpiresAt)
	})

	t.Run("token value carries 256 bits of hex-encoded entropy", func(t *testing.T) {
		tok, err := entity.IssueRefreshToken(userID, now)
		require.NoError(t, err)
		raw, err := hex.DecodeString(tok.Token)
		require.NoError(t, err)
		assert.Len(t, raw, 32)
	})

	t.Run("consecutive tokens differ", func(t *testing.T) {
		a, err := entity.IssueRefreshToken(userID, now)
		require.NoError(t, err)
		b, err := entity.IssueRefreshToken(userID, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.Token, b.Token)
	})
}

func TestRefreshTokenValidity(t *testing.T) {
	userID := entity.GenerateUserID()
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	newToken := func(t *testing.T) *entity.RefreshToken {
		t.Helper()
		tok, err := entity.IssueRefreshToken(userID, issued)
		require.NoError(t, err)
		return tok
	}

	t.Run("valid while unexpired and unrevoked", func(t *testing.T) {
		tok := newToken(t)
		assert.True(t, tok.IsValid(issued.Add(time.Hour)))
	})

	t.Run("expiry is evaluated against the given clock", func(t *testing.T) {
		tok := newToken(t)
		assert.False(t, tok.IsExpired(issued.Add(29*24*time.Hour)))
		assert.True(t, tok.IsExpired(issued.Add(31*24*time.Hour)))
		assert.False(t, tok.IsValid(issued.Add(31*24*time.Hour)))
	})

	t.Run("revocation is one-way and idempotent", func(t *testing.T) {
		tok := newToken(t)
		tok.Revoke()
		assert.True(t, tok.Revoked)
		assert.False(t, tok.IsValid(issued.Add(time.Minute)))

		tok.Revoke()
		assert.True(t, tok.Revoked)
	})
}
