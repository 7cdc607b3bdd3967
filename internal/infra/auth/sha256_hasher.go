// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"supergames/internal/domain/service"
)

// sha256Hasher implements PasswordHasher with an unsalted SHA-256 hex digest.
//
// The digest is intentionally deterministic: login resolves credentials with a
// single (email, digest) lookup, which a salted scheme cannot answer. The lack
// of salt and per-user work factor is a known weakness of this scheme; moving
// to a salted KDF requires changing the login lookup to fetch-by-email first.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the lowercase hex SHA-256 digest of the password.
func (h *sha256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}

// Verify re-hashes the plaintext and compares against the stored digest.
func (h *sha256Hasher) Verify(password, digest string) bool {
	return h.Hash(password) == digest
}
