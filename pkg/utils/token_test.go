package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestEmailToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateEmailToken(testSecret, "ada@example.com", time.Hour)
		require.NoError(t, err)

		email, err := ParseEmailToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", email)
	})

	t.Run("expired token surfaces jwt.ErrTokenExpired", func(t *testing.T) {
		token, err := GenerateEmailToken(testSecret, "ada@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = ParseEmailToken(testSecret, token)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateEmailToken(testSecret, "ada@example.com", time.Hour)
		require.NoError(t, err)

		_, err = ParseEmailToken("other-secret", token)
		assert.Error(t, err)
	})
}

func TestSessionToken(t *testing.T) {
	t.Run("round trip preserves user id and issue time", func(t *testing.T) {
		userID := uuid.New()
		before := time.Now().Add(-time.Second)

		token, err := GenerateSessionToken(testSecret, userID, time.Hour)
		require.NoError(t, err)

		parsedID, issuedAt, err := ParseSessionToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, userID, parsedID)
		assert.True(t, issuedAt.After(before))
		assert.True(t, issuedAt.Before(time.Now().Add(time.Second)))
	})

	t.Run("email token is not a valid session token", func(t *testing.T) {
		token, err := GenerateEmailToken(testSecret, "ada@example.com", time.Hour)
		require.NoError(t, err)

		_, _, err = ParseSessionToken(testSecret, token)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, _, err := ParseSessionToken(testSecret, "not-a-jwt")
		assert.Error(t, err)
	})
}
