/*
Package password hashes and verifies user passwords with bcrypt.

All hashes in the system are produced with one fixed cost so that registration
and any later re-hashing agree on the work factor.
*/
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used for every stored password.
	DefaultCost = 6

	// MaxLength is the longest plaintext bcrypt accepts, in bytes.
	MaxLength = 72
)

var (
	// ErrInvalidInput is returned for plaintext that cannot be hashed.
	ErrInvalidInput = errors.New("password: invalid input")

	// ErrInvalidCost is returned by NewHasher for a cost outside bcrypt's range.
	ErrInvalidCost = errors.New("password: invalid bcrypt cost")
)

// Hasher hashes passwords at a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using the given bcrypt cost.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost reports the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" || len(plaintext) > MaxLength {
		return "", ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// A malformed hash never matches.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
