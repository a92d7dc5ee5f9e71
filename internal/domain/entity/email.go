package entity

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailValidate = validator.New()

// Email is a normalized, validated email address. Two Email values
// compare equal iff their normalized forms are equal, so
// User@EXAMPLE.com and user@example.com collide on uniqueness.
type Email struct {
	value string
}

// NewEmail trims and lower-cases raw before validating it. Construction
// fails with ErrInvalidEmail for empty, domain-less, or malformed input.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, fmt.Errorf("%w: empty", ErrInvalidEmail)
	}
	if err := emailValidate.Var(normalized, "email"); err != nil {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }

// IsZero reports whether e is the zero value rather than a constructed address.
func (e Email) IsZero() bool { return e.value == "" }
