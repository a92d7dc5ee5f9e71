package entity

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	refreshTokenBytes = 32 // 256 bits of entropy, hex-encoded
	refreshTokenTTL   = 30 * 24 * time.Hour
)

// RefreshToken is a long-lived opaque credential exchanged for a new
// access token. Single-use: on every successful refresh the presented
// token is revoked and a replacement issued. Revocation is one-way and
// idempotent; expiry is evaluated live against a supplied clock, not a
// stored state transition.
type RefreshToken struct {
	Token     string
	UserID    UserID
	ExpiresAt time.Time
	Revoked   bool
}

// IssueRefreshToken mints a new token for userID with a cryptographically
// random opaque value and a 30-day expiry from now.
func IssueRefreshToken(userID UserID, now time.Time) (*RefreshToken, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &RefreshToken{
		Token:     hex.EncodeToString(b),
		UserID:    userID,
		ExpiresAt: now.Add(refreshTokenTTL),
	}, nil
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// Revoke marks the token unusable. Repeat calls are no-ops.
func (t *RefreshToken) Revoke() {
	t.Revoked = true
}

func (t *RefreshToken) IsValid(now time.Time) bool {
	return !t.IsExpired(now) && !t.Revoked
}
