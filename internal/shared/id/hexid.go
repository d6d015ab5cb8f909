// Package id generates the opaque entity identifiers and human-facing
// account codes used across the portal.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Lowercase hex alphabet; entity IDs look like "3f9a0c71d2e845bb".
	alphabet = "0123456789abcdef"

	// EntityIDLength is the length of every persisted entity identifier.
	EntityIDLength = 16

	// accountSuffixLength is the random portion of an account code.
	accountSuffixLength = 8
)

// Generate creates a random lowercase hex string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = EntityIDLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewEntityID generates a 16-character identifier for a persisted entity.
func NewEntityID() (string, error) {
	return Generate(EntityIDLength)
}

// MustNewEntityID generates an entity ID and panics on error. Randomness
// failures here mean the process cannot operate at all.
func MustNewEntityID() string {
	id, err := NewEntityID()
	if err != nil {
		panic(err)
	}
	return id
}

// accountPrefixes maps a role to the prefix of its account code.
var accountPrefixes = map[string]string{
	"client":    "user",
	"developer": "dev",
	"admin":     "admin",
}

// NewAccountCode generates a role-prefixed account code such as
// "user-3f9a0c71" or "dev-b2e845bb". Unknown roles fall back to "user".
func NewAccountCode(role string) (string, error) {
	prefix, ok := accountPrefixes[role]
	if !ok {
		prefix = "user"
	}

	suffix, err := Generate(accountSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, suffix), nil
}
