package entity

import "unicode"

const minPasswordLength = 8

// PlainPassword is a raw password that already passed the strength
// policy. It exists only transiently during register/login and is never
// persisted; the stored representation is always a HashedPassword.
type PlainPassword struct {
	value string
}

// NewPlainPassword applies the strength policy in order, stopping at the
// first unmet rule: length >= 8, then at least one uppercase letter,
// lowercase letter, digit, and special character. Each failure returns a
// WeakPasswordError naming that rule.
func NewPlainPassword(raw string) (PlainPassword, error) {
	if len([]rune(raw)) < minPasswordLength {
		return PlainPassword{}, &WeakPasswordError{Reason: "must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return PlainPassword{}, &WeakPasswordError{Reason: "must contain at least one uppercase letter"}
	case !hasLower:
		return PlainPassword{}, &WeakPasswordError{Reason: "must contain at least one lowercase letter"}
	case !hasDigit:
		return PlainPassword{}, &WeakPasswordError{Reason: "must contain at least one digit"}
	case !hasSpecial:
		return PlainPassword{}, &WeakPasswordError{Reason: "must contain at least one special character"}
	}

	return PlainPassword{value: raw}, nil
}

func (p PlainPassword) String() string { return p.value }

// HashedPassword is the only password representation ever persisted.
type HashedPassword struct {
	value string
}

// NewHashedPassword wraps a hash produced by the password hasher.
func NewHashedPassword(hash string) (HashedPassword, error) {
	if hash == "" {
		return HashedPassword{}, ErrEmptyHash
	}
	return HashedPassword{value: hash}, nil
}

func (h HashedPassword) String() string { return h.value }
