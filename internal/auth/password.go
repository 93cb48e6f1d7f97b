package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for seeded accounts.
const bcryptCost = 12

// HashPassword produces a salted one-way digest of the password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// PasswordMatches reports whether the password produced the digest.
func PasswordMatches(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
