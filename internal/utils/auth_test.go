package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmailToken_RoundTrip(t *testing.T) {
	token, err := GenerateEmailToken("guide@example.com", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseEmailToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "guide@example.com", claims.Email)
}

func TestGenerateEmailToken_ExpiresInOneHour(t *testing.T) {
	token, err := GenerateEmailToken("guide@example.com", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseEmailToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseEmailToken_WrongSecret(t *testing.T) {
	token, err := GenerateEmailToken("guide@example.com", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseEmailToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseEmailToken_Expired(t *testing.T) {
	token, err := GenerateEmailToken("guide@example.com", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseEmailToken(token, "test-secret")
	assert.Error(t, err)
}

func TestParseEmailToken_Garbage(t *testing.T) {
	_, err := ParseEmailToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
