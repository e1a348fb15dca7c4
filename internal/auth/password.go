// Package auth provides password hashing and JWT issuance for the API.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"gridworks/internal/domain"
)

// BcryptHasher hashes passwords with bcrypt. The zero value uses the
// library's default cost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports domain.ErrInvalidCredentials on any mismatch so callers
// never leak whether the hash or the password was at fault.
func (h BcryptHasher) Compare(hash, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
