package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest of the given plaintext
// password. The salt comes from bcrypt's own cryptographically secure
// random source, so two hashes of the same password never match.
//
// Returns an error only when bcrypt itself fails (e.g. the password exceeds
// bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword reports whether the plaintext password matches the given
// bcrypt hash.
//
// It returns false on any mismatch or on a malformed hash: a wrong
// password is never surfaced as an error. The underlying comparison is
// performed by bcrypt in constant time relative to the digest.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
