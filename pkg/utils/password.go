package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Two calls on the same input
// yield different strings; the salt is embedded in the output.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether pw matches the stored hash. A malformed
// stored hash reads as a mismatch; verification never errors outward.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
