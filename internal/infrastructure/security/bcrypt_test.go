package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/infrastructure/security"
)

func TestBcryptHasher(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	plain, err := entity.NewPlainPassword("Str0ng!Pass")
	require.NoError(t, err)

	t.Run("hash verifies against its plaintext", func(t *testing.T) {
		hashed, err := hasher.Hash(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain.String(), hashed.String())
		assert.True(t, hasher.Verify(plain, hashed))
	})

	t.Run("salting makes repeat hashes differ", func(t *testing.T) {
		first, err := hasher.Hash(plain)
		require.NoError(t, err)
		second, err := hasher.Hash(plain)
		require.NoError(t, err)
		assert.NotEqual(t, first.String(), second.String())
		assert.True(t, hasher.Verify(plain, first))
		assert.True(t, hasher.Verify(plain, second))
	})

	t.Run("wrong plaintext does not verify", func(t *testing.T) {
		hashed, err := hasher.Hash(plain)
		require.NoError(t, err)
		other, err := entity.NewPlainPassword("Diff3rent!Pass")
		require.NoError(t, err)
		assert.False(t, hasher.Verify(other, hashed))
	})

	t.Run("out of range cost falls back to the bcrypt default", func(t *testing.T) {
		h := security.NewBcryptHasher(-1)
		hashed, err := h.Hash(plain)
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hashed.String()))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
