package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is used when hashing admin passwords from the CLI helper
const DefaultCost = 12

// ErrMalformedHash is returned when the configured hash is not a bcrypt hash
var ErrMalformedHash = errors.New("password hash is not a bcrypt hash")

// Hash hashes password using bcrypt at DefaultCost
func Hash(password string) (string, error) {
	return HashWithCost(password, DefaultCost)
}

// HashWithCost hashes password using bcrypt at the given cost
func HashWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// Verify compares password with hash
func Verify(password, hash string) bool {
	return Check(password, hash) == nil
}

// Check is Verify with the failure reason kept, so a misconfigured hash
// can be told apart from a wrong password in logs.
func Check(password, hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return ErrMalformedHash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
