package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrNoAdminPassword = errors.New("no admin password configured")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether providedPassword matches the stored hash.
func VerifyPassword(providedPassword string, hashedPassword string) bool {
	if hashedPassword == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword)) == nil
}

// AdminHash picks the configured bcrypt hash, hashing the plain password
// when only that is set.
func AdminHash(hash, plain string) (string, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return "", err
		}
		return hash, nil
	}
	if plain == "" {
		return "", ErrNoAdminPassword
	}
	return HashPassword(plain)
}
