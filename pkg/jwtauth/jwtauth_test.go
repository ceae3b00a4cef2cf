package jwtauth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Generate(userID, "asha@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Generate(uuid.New(), "a@b.com", "user")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New(), "a@b.com", "user")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
