// Package auth implements credential hashing and session token handling.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives an opaque credential from a plaintext password using
// bcrypt. The salt is embedded in the credential, so two hashes of the same
// plaintext will differ.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored credential.
// Malformed credentials verify as false, never as an error.
func VerifyPassword(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
