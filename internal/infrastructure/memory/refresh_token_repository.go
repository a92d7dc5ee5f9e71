package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/domain/repository"
)

type RefreshTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *RefreshTokenRepository) Save(_ context.Context, t *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *RefreshTokenRepository) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, entity.ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

// Consume revokes the token only if it is still unrevoked, under the
// repository lock, so a replayed token can be consumed at most once.
func (r *RefreshTokenRepository) Consume(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok || t.Revoked {
		return entity.ErrTokenNotFound
	}
	t.Revoke()
	return nil
}

var _ repository.RefreshTokenRepository = (*RefreshTokenRepository)(nil)
