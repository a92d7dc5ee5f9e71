// Package event defines the domain events the auth core produces for
// external consumers. The core publishes them; it never consumes them.
package event

import "time"

// Event is implemented by every domain event.
type Event interface {
	EventName() string
	OccurredOn() time.Time
}

// UserRegistered is emitted when a new user aggregate is created. The
// email worker consumes it to send a welcome email.
type UserRegistered struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"occurred_on"`
}

func NewUserRegistered(userID, email string, at time.Time) UserRegistered {
	return UserRegistered{UserID: userID, Email: email, At: at}
}

func (e UserRegistered) EventName() string { return "auth.user_registered" }
func (e UserRegistered) OccurredOn() time.Time { return e.At }

// UserAuthenticated is emitted on every successful login.
type UserAuthenticated struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"occurred_on"`
}

func NewUserAuthenticated(userID, email string, at time.Time) UserAuthenticated {
	return UserAuthenticated{UserID: userID, Email: email, At: at}
}

func (e UserAuthenticated) EventName() string { return "auth.user_authenticated" }
func (e UserAuthenticated) OccurredOn() time.Time { return e.At }
