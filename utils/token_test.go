package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"socialword/config"
)

func TestTokenRoundTrip(t *testing.T) {
	require.NoError(t, config.Load())

	token, err := GenerateToken("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenGarbage(t *testing.T) {
	require.NoError(t, config.Load())

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateVerificationCodeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateVerificationCode()
		require.Len(t, code, 4)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}
