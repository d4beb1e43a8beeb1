package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-saleor-client/auth"
)

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	claims, err := auth.ParseClaims(makeToken(t, auth.TokenTypeAccess, exp))
	require.NoError(t, err)

	assert.Equal(t, auth.TokenTypeAccess, claims.Type)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "VXNlcjoyMQ==", claims.UserID)
	assert.True(t, claims.IsStaff)
	assert.Equal(t, []string{"MANAGE_ORDERS"}, claims.Permissions)
	assert.True(t, exp.Equal(claims.ExpiresAt.Time))
}

func TestParseClaims_Expired(t *testing.T) {
	exp := time.Now().Add(-time.Hour)
	claims, err := auth.ParseClaims(makeToken(t, auth.TokenTypeAccess, exp))
	require.NoError(t, err, "expired tokens are still readable")
	assert.True(t, claims.Expired(time.Now()))
}

func TestParseClaims_Invalid(t *testing.T) {
	for _, token := range []string{"", "invalid.jwt.token.format", "abc"} {
		_, err := auth.ParseClaims(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, token)
	}
}

func TestClaims_ExpiresWithin(t *testing.T) {
	now := time.Now()
	claims, err := auth.ParseClaims(makeToken(t, auth.TokenTypeAccess, now.Add(time.Minute)))
	require.NoError(t, err)

	assert.False(t, claims.ExpiresWithin(now, 10*time.Second))
	assert.True(t, claims.ExpiresWithin(now, 2*time.Minute))
	assert.False(t, claims.Expired(now))

	assert.False(t, (&auth.Claims{}).ExpiresWithin(now, time.Hour), "no exp claim")
}
