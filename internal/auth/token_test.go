package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "stockfolio", time.Hour)

	user := models.User{
		ID:       42,
		Username: "jiyoon",
		Roles:    []string{models.RoleUser, models.RoleAdmin},
	}

	token, err := tm.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.ID)
	assert.Equal(t, "jiyoon", identity.Username)
	assert.Equal(t, []string{models.RoleUser, models.RoleAdmin}, identity.Roles)
	assert.True(t, identity.IsAdmin)
}

func TestParse_NonAdmin(t *testing.T) {
	tm := NewTokenManager("test-secret", "stockfolio", time.Hour)

	token, err := tm.Generate(models.User{ID: 7, Username: "mina", Roles: []string{models.RoleUser}})
	require.NoError(t, err)

	identity, err := tm.Parse(token)
	require.NoError(t, err)
	assert.False(t, identity.IsAdmin)
}

func TestParse_RejectsBadSignature(t *testing.T) {
	issued := NewTokenManager("secret-a", "stockfolio", time.Hour)
	verifier := NewTokenManager("secret-b", "stockfolio", time.Hour)

	token, err := issued.Generate(models.User{ID: 1, Username: "x"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", "stockfolio", -time.Minute)

	token, err := tm.Generate(models.User{ID: 1, Username: "x"})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "stockfolio", time.Hour)
	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
