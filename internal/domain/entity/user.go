// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core account entity. The ID is assigned by the database on
// insert and never changes afterwards. PasswordDigest holds the one-way
// digest of the password; the plaintext is never persisted.
type User struct {
	ID             uint
	FirstName      string
	LastName       string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}

// DisplayName returns the name carried in token claims and login responses.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
