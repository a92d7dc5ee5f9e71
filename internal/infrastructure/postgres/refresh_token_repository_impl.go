package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/domain/repository"
)

type RefreshTokenRepository struct {
	pool *pgxpool.Pool
}

func NewRefreshTokenRepository(pool *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool}
}

func (r *RefreshTokenRepository) Save(ctx context.Context, t *entity.RefreshToken) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO refresh_tokens (token, user_id, expires_at, revoked)
		VALUES ($1, $2, $3, $4)
	`, t.Token, t.UserID.String(), t.ExpiresAt, t.Revoked)
	return err
}

func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var (
		rawUserID string
		expiresAt time.Time
		revoked   bool
	)
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, expires_at, revoked
		FROM refresh_tokens
		WHERE token = $1
	`, token).Scan(&rawUserID, &expiresAt, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrTokenNotFound
		}
		return nil, err
	}

	userID, err := entity.NewUserID(rawUserID)
	if err != nil {
		return nil, err
	}
	return &entity.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		Revoked:   revoked,
	}, nil
}

// Consume flips revoked from false to true in a single conditional
// update. Under concurrent refreshes presenting the same token only one
// caller sees a row affected; the rest get entity.ErrTokenNotFound. The
// row itself is kept for replay visibility.
func (r *RefreshTokenRepository) Consume(ctx context.Context, token string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE token = $1 AND revoked = false
	`, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrTokenNotFound
	}
	return nil
}

var _ repository.RefreshTokenRepository = (*RefreshTokenRepository)(nil)
