package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

func TestNewEmail(t *testing.T) {
	t.Run("accepts a well-formed address", func(t *testing.T) {
		e, err := entity.NewEmail("user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", e.String())
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := entity.NewEmail("  User@EXAMPLE.com ")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", e.String())
	})

	t.Run("normalized addresses compare equal", func(t *testing.T) {
		a, err := entity.NewEmail("User@EXAMPLE.com")
		require.NoError(t, err)
		b, err := entity.NewEmail("user@example.com")
		require.NoError(t, err)
		assert.True(t, a.Equals(b))
		assert.Equal(t, a, b)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := entity.NewEmail("")
		assert.ErrorIs(t, err, entity.ErrInvalidEmail)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := entity.NewEmail("   ")
		assert.ErrorIs(t, err, entity.ErrInvalidEmail)
	})

	t.Run("rejects missing domain", func(t *testing.T) {
		_, err := entity.NewEmail("user@")
		assert.ErrorIs(t, err, entity.ErrInvalidEmail)
	})

	t.Run("rejects malformed syntax", func(t *testing.T) {
		for _, raw := range []string{"not-an-email", "@example.com", "a b@example.com"} {
			_, err := entity.NewEmail(raw)
			assert.ErrorIs(t, err, entity.ErrInvalidEmail, "input %q", raw)
		}
	})
}
