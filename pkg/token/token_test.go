package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OnShift/config"
)

func setupTokenTest(t *testing.T) {
	t.Helper()
	config.Cfg.JWTSecret = "test-secret"
	config.Cfg.JWTExpireMinutes = 30
	config.Cfg.JWTRefreshDays = 7
	require.NoError(t, Init())
}

func TestGenerateTokenPairAndValidateRefresh(t *testing.T) {
	setupTokenTest(t)

	access, refresh, expiresIn, err := GenerateTokenPair("12345", "worker")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
	assert.Greater(t, expiresIn, 0)

	userID, role, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "12345", userID)
	assert.Equal(t, "worker", role)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	setupTokenTest(t)

	access, _, _, err := GenerateTokenPair("12345", "admin")
	require.NoError(t, err)

	// access token 没有 type=refresh，不能拿来刷新
	_, _, err = ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	setupTokenTest(t)

	_, _, err := ValidateRefreshToken("not.a.jwt")
	assert.Error(t, err)

	_, _, err = ValidateRefreshToken("")
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsWrongSecret(t *testing.T) {
	setupTokenTest(t)

	_, refresh, _, err := GenerateTokenPair("12345", "worker")
	require.NoError(t, err)

	config.Cfg.JWTSecret = "another-secret"
	defer func() { config.Cfg.JWTSecret = "test-secret" }()

	_, _, err = ValidateRefreshToken(refresh)
	assert.Error(t, err)
}
