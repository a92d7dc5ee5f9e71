package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save inserts the user. The unique index on email is the authoritative
// uniqueness guard; a violation surfaces as entity.ErrUserAlreadyExists
// even when the application-level pre-check passed.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, u.ID.String(), u.Email.String(), u.Password.String(), u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return entity.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id.String())
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email.String())
	return scanUser(row)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		rawID     string
		rawEmail  string
		rawHash   string
		createdAt time.Time
	)
	if err := row.Scan(&rawID, &rawEmail, &rawHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}

	id, err := entity.NewUserID(rawID)
	if err != nil {
		return nil, err
	}
	email, err := entity.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	hash, err := entity.NewHashedPassword(rawHash)
	if err != nil {
		return nil, err
	}
	return entity.RehydrateUser(id, email, hash, createdAt), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
