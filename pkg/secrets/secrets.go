// Package secrets wraps bcrypt hashing for stored user passwords.
package secrets

import (
	"errors"

	pkgerrors "hiu/pkg/domain-errors"

	"golang.org/x/crypto/bcrypt"
)

// Hash creates a bcrypt hash of the provided password for storage.
func Hash(password string) (string, error) {
	if password == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "password is too long")
		}
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// Verify checks if a plaintext password matches a bcrypt hash.
func Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid password")
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not verify password")
	}
	return nil
}
