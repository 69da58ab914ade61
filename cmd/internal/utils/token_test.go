package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("unit-test-secret")

	t.Run("issue and parse", func(t *testing.T) {
		token, err := IssueToken(42, "alice", secret, time.Hour)
		require.NoError(t, err)

		data, err := ParseTokenData(token, secret)
		require.NoError(t, err)
		assert.Equal(t, 42, data.UserID)
		assert.Equal(t, "alice", data.Username)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := IssueToken(42, "alice", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseTokenData(token, []byte("other-secret"))
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := IssueToken(42, "alice", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseTokenData(token, secret)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseTokenData("not-a-token", secret)
		assert.Error(t, err)
	})
}

func TestEpochFormatting(t *testing.T) {
	millis, err := FromEpoch("2026-09-01T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T09:00:00Z", FormatEpoch(millis))

	_, err = FromEpoch("tomorrow")
	assert.Error(t, err)
}
