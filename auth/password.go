package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted digest from the plaintext. bcrypt
// embeds a random salt per call, so hashing the same password twice
// yields different digests. A cost of zero or less falls back to the
// bcrypt default.
func HashPassword(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the digest. A
// mismatch is a false return, never an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
