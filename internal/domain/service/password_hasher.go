// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns a plaintext password into the digest stored with the
// user record. The digest must be deterministic: login resolves credentials
// with a single (email, digest) lookup, so the same password always has to
// produce the same digest.
type PasswordHasher interface {
	// Hash returns the one-way digest of a plaintext password.
	Hash(password string) string

	// Verify reports whether the plaintext hashes to the stored digest.
	Verify(password, digest string) bool
}
