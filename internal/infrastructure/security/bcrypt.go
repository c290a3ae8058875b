// Package security provides the production adapter for the password
// hashing port.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/loopers/member-api/internal/domain/member"
)

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed hasher. A cost of 0 selects
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}

var _ member.PasswordHasher = (*BcryptHasher)(nil)
