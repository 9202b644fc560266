package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("password does not match stored hash")
)

const (
	// bcryptCost trades hash time for resistance to offline cracking;
	// raising it transparently upgrades hashes on the next password change
	bcryptCost = 12
	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 8
)

// HashPassword returns the bcrypt hash of a password. The length check runs
// here as well as in request validation so no caller can hash a password the
// API would reject.
func HashPassword(password string) (string, error) {
	if !IsPasswordValid(password) {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against a stored hash,
// returning ErrPasswordMismatch on failure
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// IsPasswordValid reports whether a password meets the minimum length
func IsPasswordValid(password string) bool {
	return len(password) >= MinPasswordLength
}
