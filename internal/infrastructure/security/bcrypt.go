package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-auth-service/internal/domain/entity"
)

// BcryptHasher converts between plaintext passwords and their stored
// hashes. bcrypt salts every hash, so two hashes of the same plaintext
// differ, and its comparison is resistant to timing attacks.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain entity.PlainPassword) (entity.HashedPassword, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain.String()), h.cost)
	if err != nil {
		return entity.HashedPassword{}, err
	}
	return entity.NewHashedPassword(string(b))
}

// Verify delegates the comparison to bcrypt; raw strings are never
// compared directly.
func (h *BcryptHasher) Verify(plain entity.PlainPassword, hashed entity.HashedPassword) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed.String()), []byte(plain.String())) == nil
}
