package entity

import (
	"time"

	"github.com/oksasatya/go-auth-service/internal/domain/event"
)

// User is the aggregate root for the auth domain. It is created once at
// registration and immutable afterward; there is no profile mutation.
type User struct {
	ID        UserID
	Email     Email
	Password  HashedPassword
	CreatedAt time.Time
}

// RegisterUser constructs the aggregate and returns the UserRegistered
// event alongside it. Events are an explicit return value rather than a
// buffer on the aggregate, so the caller decides how they reach external
// consumers.
func RegisterUser(id UserID, email Email, password HashedPassword, now time.Time) (*User, event.UserRegistered) {
	u := &User{
		ID:        id,
		Email:     email,
		Password:  password,
		CreatedAt: now,
	}
	return u, event.NewUserRegistered(id.String(), email.String(), now)
}

// RehydrateUser rebuilds an aggregate from persisted state without
// emitting events.
func RehydrateUser(id UserID, email Email, password HashedPassword, createdAt time.Time) *User {
	return &User{ID: id, Email: email, Password: password, CreatedAt: createdAt}
}
