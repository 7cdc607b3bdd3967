package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supergames/config"
	"supergames/internal/domain/entity"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Key:           "test_signing_key_long_enough_for_hs512_testing",
		Issuer:        "supergames",
		Audience:      "supergames-web",
		ExpiryMinutes: 60,
	}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	user := &entity.User{
		ID:        7,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@lee.com",
	}

	tokenString, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "ann@lee.com", claims.Email)
	assert.Equal(t, "Ann Lee", claims.Name)
	assert.Equal(t, "supergames", claims.Issuer)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	issuing, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Key = "a_completely_different_signing_key_for_testing"
	validating, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	tokenString, err := issuing.Issue(&entity.User{Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := validating.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongIssuerOrAudience(t *testing.T) {
	issuing, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	tokenString, err := issuing.Issue(&entity.User{Email: "a@b.com"})
	require.NoError(t, err)

	wrongIssuer := newTestJWTConfig()
	wrongIssuer.JWT.Issuer = "someone-else"
	svc, err := NewJWTService(wrongIssuer)
	require.NoError(t, err)
	_, err = svc.Validate(tokenString)
	assert.Error(t, err)

	wrongAudience := newTestJWTConfig()
	wrongAudience.JWT.Audience = "other-app"
	svc, err = NewJWTService(wrongAudience)
	require.NoError(t, err)
	_, err = svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := &jwtService{
		key:      []byte("test_signing_key_long_enough_for_hs512_testing"),
		issuer:   "supergames",
		audience: "supergames-web",
		ttl:      -time.Minute,
	}

	tokenString, err := svc.Issue(&entity.User{Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpirySetFromConfig(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	tokenString, err := svc.Issue(&entity.User{Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.WithinDuration(t, claims.IssuedAt.Add(60*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestNewJWTService_ConfigValidation(t *testing.T) {
	missingKey := newTestJWTConfig()
	missingKey.JWT.Key = ""
	_, err := NewJWTService(missingKey)
	assert.Error(t, err)

	badExpiry := newTestJWTConfig()
	badExpiry.JWT.ExpiryMinutes = 0
	_, err = NewJWTService(badExpiry)
	assert.Error(t, err)
}
