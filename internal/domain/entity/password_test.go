package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

func TestNewPlainPassword(t *testing.T) {
	t.Run("accepts a password meeting every rule", func(t *testing.T) {
		p, err := entity.NewPlainPassword("Str0ng!Pass")
		require.NoError(t, err)
		assert.Equal(t, "Str0ng!Pass", p.String())
	})

	weakCases := []struct {
		name   string
		input  string
		reason string
	}{
		{"too short", "S1!a", "must be at least 8 characters long"},
		{"seven characters", "Ab1!cde", "must be at least 8 characters long"},
		{"no uppercase", "str0ng!pass", "must contain at least one uppercase letter"},
		{"no lowercase", "STR0NG!PASS", "must contain at least one lowercase letter"},
		{"no digit", "Strong!Pass", "must contain at least one digit"},
		{"no special character", "Str0ngPass", "must contain at least one special character"},
	}
	for _, tc := range weakCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.NewPlainPassword(tc.input)
			var weak *entity.WeakPasswordError
			require.ErrorAs(t, err, &weak)
			assert.Equal(t, tc.reason, weak.Reason)
		})
	}

	t.Run("length is checked before character classes", func(t *testing.T) {
		// Short and missing an uppercase letter; the length rule wins.
		_, err := entity.NewPlainPassword("a1!")
		var weak *entity.WeakPasswordError
		require.ErrorAs(t, err, &weak)
		assert.Equal(t, "must be at least 8 characters long", weak.Reason)
	})
}

func TestNewHashedPassword(t *testing.T) {
	t.Run("wraps a non-empty hash", func(t *testing.T) {
		h, err := entity.NewHashedPassword("$2a$10$abcdefg")
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$abcdefg", h.String())
	})

	t.Run("rejects an empty hash", func(t *testing.T) {
		_, err := entity.NewHashedPassword("")
		assert.ErrorIs(t, err, entity.ErrEmptyHash)
	})
}
