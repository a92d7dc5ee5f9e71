// Package memory provides in-memory repository adapters. They back the
// workflow and handler tests and mirror the concurrency contracts of
// the postgres adapters: email uniqueness enforced on insert, refresh
// token consumption atomic under the repository mutex.
package memory

import (
	"context"
	"sync"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	email map[string]string // normalized email -> user id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]*entity.User),
		email: make(map[string]string),
	}
}

func (r *UserRepository) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.email[u.Email.String()]; ok && existing != u.ID.String() {
		return entity.ErrUserAlreadyExists
	}
	cp := *u
	r.byID[u.ID.String()] = &cp
	r.email[u.Email.String()] = u.ID.String()
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id entity.UserID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id.String()]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email entity.Email) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.email[email.String()]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
