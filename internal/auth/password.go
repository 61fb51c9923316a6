package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor the account seeders use
const DefaultBcryptCost = 10

var errEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes a plaintext password with bcrypt. Each call
// salts independently, so two hashes of the same input differ.
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", errEmptyPassword
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A mismatch or a malformed stored hash both return false; this
// function never fails loudly on an expected negative.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
