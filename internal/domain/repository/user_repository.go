package repository

import (
	"context"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

// UserRepository abstracts user persistence. Implementations return
// entity.ErrUserNotFound when a lookup misses and translate storage
// uniqueness violations into entity.ErrUserAlreadyExists.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
}
