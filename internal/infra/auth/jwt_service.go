package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"supergames/config"
	"supergames/internal/domain/entity"
	"supergames/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA-512 signed JWTs.
type jwtService struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Key == "" {
		return nil, errors.New("jwt signing key must be provided")
	}
	if cfg.JWT.ExpiryMinutes <= 0 {
		return nil, errors.New("jwt expiry must be a positive number of minutes")
	}

	return &jwtService{
		key:      []byte(cfg.JWT.Key),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      time.Duration(cfg.JWT.ExpiryMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed token carrying the user's email and display name.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: user.Email,
		Name:  user.DisplayName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses the token and checks signature method, issuer, audience and
// expiry. Any failure is an unauthenticated outcome for the caller.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.key, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
