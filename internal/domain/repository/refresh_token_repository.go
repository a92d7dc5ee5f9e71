package repository

import (
	"context"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

// RefreshTokenRepository persists refresh tokens keyed by their opaque
// token string. Revoked tokens are kept, not deleted, so replays stay
// visible.
type RefreshTokenRepository interface {
	Save(ctx context.Context, t *entity.RefreshToken) error
	// FindByToken returns entity.ErrTokenNotFound when no row matches.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	// Consume atomically flips the revoked flag from false to true.
	// It returns entity.ErrTokenNotFound if the token does not exist or
	// was already revoked, which makes it the authoritative guard
	// against two concurrent refreshes replaying the same token: at
	// most one caller observes success.
	Consume(ctx context.Context, token string) error
}
