package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTokenSecret(t *testing.T) {
	assert.Error(t, InitTokenSecret(""))
	assert.NoError(t, InitTokenSecret("test-secret"))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	require.NoError(t, InitTokenSecret("test-secret"))

	token, err := GenerateToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerifyToken_Expired(t *testing.T) {
	require.NoError(t, InitTokenSecret("test-secret"))

	token, err := generateTokenWithTTL(42, "user@example.com", -time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	require.NoError(t, InitTokenSecret("first-secret"))
	token, err := GenerateToken(1, "user@example.com")
	require.NoError(t, err)

	require.NoError(t, InitTokenSecret("second-secret"))
	claims, err := VerifyToken(token)
	assert.Nil(t, claims)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	require.NoError(t, InitTokenSecret("test-secret"))

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := VerifyToken(token)
		assert.Nil(t, claims)
		assert.Equal(t, ErrInvalidToken, err)
	}
}
