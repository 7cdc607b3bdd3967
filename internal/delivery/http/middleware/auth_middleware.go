// Package middleware holds the HTTP-specific middleware of the service.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"supergames/internal/delivery/http/response"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/domain/service"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyEmail    = "authEmail"
	ContextKeyUserName = "authUserName"
)

// AuthMiddleware guards routes behind a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the token's
// identity claims on the echo context. Every failure maps to the same
// unauthenticated outcome.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Error(c, domainerrors.ErrUnauthenticated.HTTPCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, domainerrors.ErrUnauthenticated.HTTPCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Error(c, domainerrors.ErrUnauthenticated.HTTPCode(), domainerrors.ErrUnauthenticated.Message())
		}

		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyUserName, claims.Name)

		return next(c)
	}
}
