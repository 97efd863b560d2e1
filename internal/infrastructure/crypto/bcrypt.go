// Package crypto implements the password hasher port on top of bcrypt.
package crypto

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with a cost fixed at construction time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps out-of-range costs to the bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
