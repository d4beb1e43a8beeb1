package auth_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-saleor-client/auth"
)

var testSecret = []byte("test-secret-for-unit-tests")

func makeToken(t *testing.T, typ string, exp time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		Type:        typ,
		Email:       "admin@example.com",
		UserID:      "VXNlcjoyMQ==",
		IsStaff:     true,
		Permissions: []string{"MANAGE_ORDERS"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(exp.Add(-5 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

// fakeAuthenticator issues signed tokens. Refresh blocks until release is
// closed or its context is done when release is set.
type fakeAuthenticator struct {
	t         *testing.T
	now       time.Time
	logins    atomic.Int32
	refreshes atomic.Int32
	release   chan struct{}

	mu   sync.Mutex
	seen []auth.Tokens
}

func (f *fakeAuthenticator) Login(_ context.Context, email, password string) (auth.Tokens, error) {
	f.logins.Add(1)
	if password != "secret" {
		return auth.Tokens{}, errors.New("invalid credentials")
	}
	return auth.Tokens{
		Token:        makeToken(f.t, auth.TokenTypeAccess, f.now.Add(5*time.Minute)),
		RefreshToken: makeToken(f.t, auth.TokenTypeRefresh, f.now.Add(30*24*time.Hour)),
		CsrfToken:    "csrf-" + email,
	}, nil
}

func (f *fakeAuthenticator) Refresh(ctx context.Context, tokens auth.Tokens) (auth.Tokens, error) {
	f.refreshes.Add(1)
	f.mu.Lock()
	f.seen = append(f.seen, tokens)
	f.mu.Unlock()
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return auth.Tokens{}, ctx.Err()
		}
	}
	return auth.Tokens{Token: makeToken(f.t, auth.TokenTypeAccess, f.now.Add(time.Hour))}, nil
}
