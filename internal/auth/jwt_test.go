package auth

import (
	"testing"

	"enlistco_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 1
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t, "test-secret")

	token, err := GenerateToken("employer@acme.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "employer@acme.test", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "test-secret")
	token, err := GenerateToken("employer@acme.test")
	require.NoError(t, err)

	setTestConfig(t, "other-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, "test-secret")

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
