package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword computes a salted bcrypt hash of the plaintext. bcrypt embeds
// a random per-call salt, so hashing the same input twice yields different
// hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
