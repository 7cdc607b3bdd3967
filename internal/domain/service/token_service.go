package service

import (
	"github.com/golang-jwt/jwt/v5"

	"supergames/internal/domain/entity"
)

// Claims defines the custom claims carried by issued tokens.
// The payload holds identity only; no password material ever enters a token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for an authenticated user.
	Issue(user *entity.User) (string, error)

	// Validate checks signature, issuer, audience and expiry of a token
	// string and returns its claims when all of them hold.
	Validate(tokenString string) (*Claims, error)
}
