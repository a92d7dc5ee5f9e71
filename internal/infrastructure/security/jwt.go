package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

// TokenCodec mints and verifies signed access tokens. Claims carry the
// user identity; the signature is HMAC-SHA256 over a server-held secret.
// Time is an injected dependency so expiry behavior is testable.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration, now func() time.Time) *TokenCodec {
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: now}
}

// TTL returns the access token lifetime.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

type accessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Generate produces a compact signed token with claims
// {user_id, email, iat, nbf, exp}, valid from now until now+TTL.
func (c *TokenCodec) Generate(u *entity.User) (string, error) {
	now := c.now()
	claims := &accessClaims{
		UserID: u.ID.String(),
		Email:  u.Email.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the signature and the [nbf, exp] window before
// recovering the identity claims. Every failure mode, whether a parse
// error, a signature mismatch, or a time-window violation, collapses to
// entity.ErrInvalidCredentials so callers cannot distinguish expired
// from forged from malformed.
func (c *TokenCodec) Decode(token string) (entity.UserID, entity.Email, error) {
	claims := &accessClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return entity.UserID{}, entity.Email{}, entity.ErrInvalidCredentials
	}

	userID, err := entity.NewUserID(claims.UserID)
	if err != nil {
		return entity.UserID{}, entity.Email{}, entity.ErrInvalidCredentials
	}
	email, err := entity.NewEmail(claims.Email)
	if err != nil {
		return entity.UserID{}, entity.Email{}, entity.ErrInvalidCredentials
	}
	return userID, email, nil
}
