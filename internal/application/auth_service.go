package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/domain/event"
	repo "github.com/oksasatya/go-auth-service/internal/domain/repository"
)

// PasswordHasher converts between plaintext and stored password hashes.
type PasswordHasher interface {
	Hash(plain entity.PlainPassword) (entity.HashedPassword, error)
	Verify(plain entity.PlainPassword, hashed entity.HashedPassword) bool
}

// TokenGenerator mints a signed access token for a user.
type TokenGenerator interface {
	Generate(u *entity.User) (string, error)
	TTL() time.Duration
}

// TokenDecoder verifies an access token and recovers its identity claims.
type TokenDecoder interface {
	Decode(token string) (entity.UserID, entity.Email, error)
}

// EventPublisher delivers domain events to external consumers.
// *helpers.RabbitPublisher satisfies it in production.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthTokenResponse is the token payload returned by login and refresh.
type AuthTokenResponse struct {
	AccessToken  string
	ExpiresIn    int
	RefreshToken string
}

// UserProfile is the read model returned by GetProfile.
type UserProfile struct {
	ID    string
	Email string
}

// eventEnvelope is the wire shape events take on the message queue.
type eventEnvelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Service orchestrates registration, authentication, token refresh, and
// profile retrieval. Every operation is synchronous request-response;
// the only shared state lives behind the repositories.
type Service struct {
	Users  repo.UserRepository
	Tokens repo.RefreshTokenRepository
	Hasher PasswordHasher
	Codec  TokenCodec
	Events EventPublisher
	Logger *logrus.Logger
	now    func() time.Time
}

// TokenCodec bundles the generator and decoder sides of the access
// token codec; *security.TokenCodec implements both.
type TokenCodec interface {
	TokenGenerator
	TokenDecoder
}

func NewService(users repo.UserRepository, tokens repo.RefreshTokenRepository, hasher PasswordHasher, codec TokenCodec, events EventPublisher, logger *logrus.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		Users:  users,
		Tokens: tokens,
		Hasher: hasher,
		Codec:  codec,
		Events: events,
		Logger: logger,
		now:    now,
	}
}

// Register creates a new user. The email pre-check is a fast path; the
// storage layer's unique constraint is the authoritative guard, and the
// repository translates a post-hoc violation into ErrUserAlreadyExists.
// No token is issued on register.
func (s *Service) Register(ctx context.Context, rawEmail, rawPassword string) (*entity.User, error) {
	email, err := entity.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	plain, err := entity.NewPlainPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, entity.ErrUserAlreadyExists
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.Hasher.Hash(plain)
	if err != nil {
		return nil, err
	}

	u, registered := entity.RegisterUser(entity.GenerateUserID(), email, hashed, s.now())
	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}

	s.publish(ctx, registered)
	return u, nil
}

// Login verifies credentials and issues a fresh access/refresh token
// pair. An unknown email and a wrong password produce the same
// ErrInvalidCredentials so the API does not reveal account existence.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (*AuthTokenResponse, error) {
	email, err := entity.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	plain, err := entity.NewPlainPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.Hasher.Verify(plain, u.Password) {
		return nil, entity.ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewUserAuthenticated(u.ID.String(), u.Email.String(), s.now()))
	return resp, nil
}

// Refresh rotates a refresh token: the presented token is atomically
// consumed and a brand-new pair issued. If reissue fails after the old
// token was consumed the user must log in again; failing closed there
// is deliberate.
func (s *Service) Refresh(ctx context.Context, token string) (*AuthTokenResponse, error) {
	old, err := s.Tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !old.IsValid(s.now()) {
		return nil, entity.ErrInvalidCredentials
	}

	u, err := s.Users.FindByID(ctx, old.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			// Token outlived its owner; treat as inconsistent state.
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	// Atomic conditional revoke is the replay guard: if a concurrent
	// refresh already consumed the token this fails and the caller
	// gets the same opaque error as any other invalid token.
	if err := s.Tokens.Consume(ctx, token); err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

// GetProfile looks up a user by id. The id is expected to originate from
// an already-verified access token, so a miss here signals state the
// boundary should treat as not-found rather than unauthorized.
func (s *Service) GetProfile(ctx context.Context, rawID string) (*UserProfile, error) {
	id, err := entity.NewUserID(rawID)
	if err != nil {
		return nil, entity.ErrUserNotFound
	}
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserProfile{ID: u.ID.String(), Email: u.Email.String()}, nil
}

func (s *Service) issueTokens(ctx context.Context, u *entity.User) (*AuthTokenResponse, error) {
	access, err := s.Codec.Generate(u)
	if err != nil {
		return nil, err
	}
	refresh, err := entity.IssueRefreshToken(u.ID, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Tokens.Save(ctx, refresh); err != nil {
		return nil, err
	}
	return &AuthTokenResponse{
		AccessToken:  access,
		ExpiresIn:    int(s.Codec.TTL().Seconds()),
		RefreshToken: refresh.Token,
	}, nil
}

// publish delivers a domain event best-effort. Event delivery is not
// part of the operation's contract, so a broker failure is logged and
// the operation still succeeds.
func (s *Service) publish(ctx context.Context, e event.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, eventEnvelope{Event: e.EventName(), Payload: e}); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", e.EventName()).Warn("event publish failed")
	}
}
