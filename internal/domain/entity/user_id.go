package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID identifies a user. Generated once at registration, immutable
// afterward.
type UserID struct {
	value uuid.UUID
}

// NewUserID validates that raw is UUID-shaped.
func NewUserID(raw string) (UserID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return UserID{}, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return UserID{value: id}, nil
}

// GenerateUserID produces a fresh random (v4) identifier.
func GenerateUserID() UserID {
	return UserID{value: uuid.New()}
}

func (id UserID) String() string { return id.value.String() }

func (id UserID) Equals(other UserID) bool { return id.value == other.value }

func (id UserID) IsZero() bool { return id.value == uuid.Nil }
