package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/llehouerou/go-saleor-client/auth"
)

func newSession(t *testing.T, now time.Time) (*auth.Session, *fakeAuthenticator, *auth.MemoryStore) {
	t.Helper()
	fake := &fakeAuthenticator{t: t, now: now}
	store := auth.NewMemoryStore()
	clock := func() time.Time { return now }
	return auth.NewSession(fake, store, auth.WithClock(clock)), fake, store
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, store := newSession(t, now)

	tokens, err := session.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "csrf-admin@example.com", tokens.CsrfToken)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens, stored)

	token, err := session.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens.Token, token)
	assert.Equal(t, int32(0), fake.refreshes.Load(), "a fresh token is not refreshed")
}

func TestSession_LoginFailure(t *testing.T) {
	ctx := context.Background()
	session, _, store := newSession(t, time.Now())

	_, err := session.Login(ctx, "admin@example.com", "wrong")
	require.EqualError(t, err, "invalid credentials")

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestSession_NotLoggedIn(t *testing.T) {
	session, _, _ := newSession(t, time.Now())
	_, err := session.AccessToken(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestSession_RefreshWithinLeeway(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, store := newSession(t, now)

	refresh := makeToken(t, auth.TokenTypeRefresh, now.Add(time.Hour))
	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, now.Add(10*time.Second)),
		RefreshToken: refresh,
		CsrfToken:    "csrf",
	}))

	token, err := session.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.refreshes.Load())

	claims, err := auth.ParseClaims(token)
	require.NoError(t, err)
	assert.False(t, claims.ExpiresWithin(now, auth.DefaultLeeway))

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, stored.Token)
	assert.Equal(t, refresh, stored.RefreshToken, "refresh token is kept")
	assert.Equal(t, "csrf", stored.CsrfToken)
}

func TestSession_RefreshTokenExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, store := newSession(t, now)

	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, now.Add(-time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, now.Add(-time.Second)),
	}))
	_, err := session.AccessToken(ctx)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
	assert.Equal(t, int32(0), fake.refreshes.Load())
}

func TestSession_NoRefreshToken(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, _, store := newSession(t, now)

	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token: makeToken(t, auth.TokenTypeAccess, now.Add(-time.Minute)),
	}))
	_, err := session.AccessToken(ctx)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestSession_ForcedRefresh(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, _ := newSession(t, now)

	tokens, err := session.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	token, err := session.Refresh(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.Token, token)
	assert.Equal(t, int32(1), fake.refreshes.Load())

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.seen, 1)
	assert.Equal(t, tokens.RefreshToken, fake.seen[0].RefreshToken)
	assert.Equal(t, tokens.CsrfToken, fake.seen[0].CsrfToken)
}

func TestSession_ConcurrentRefresh(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, store := newSession(t, now)
	fake.release = make(chan struct{})

	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, now.Add(-time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, now.Add(time.Hour)),
	}))

	const callers = 10
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = session.AccessToken(ctx)
		}(i)
	}
	require.Eventually(t, func() bool { return fake.refreshes.Load() == 1 }, time.Second, time.Millisecond)
	close(fake.release)
	wg.Wait()

	assert.Equal(t, int32(1), fake.refreshes.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, tokens[0], tokens[i])
	}
}

func TestSession_RefreshSurvivesCancelledCaller(t *testing.T) {
	now := time.Now()
	session, fake, store := newSession(t, now)
	fake.release = make(chan struct{})

	require.NoError(t, store.Save(context.Background(), auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, now.Add(-time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, now.Add(time.Hour)),
	}))

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := session.AccessToken(first)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return fake.refreshes.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		token string
		err   error
	}
	second := make(chan result, 1)
	go func() {
		token, err := session.AccessToken(context.Background())
		second <- result{token, err}
	}()

	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller is still waiting for the refresh")
	}

	close(fake.release)
	select {
	case res := <-second:
		require.NoError(t, res.err)
		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored.Token, res.token)
	case <-time.After(time.Second):
		t.Fatal("refresh did not complete")
	}
	assert.Equal(t, int32(1), fake.refreshes.Load())
}

func TestSession_ForcedRefreshJoinsExpiryRefresh(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	session, fake, store := newSession(t, now)
	fake.release = make(chan struct{})

	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, now.Add(-time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, now.Add(time.Hour)),
	}))

	var wg sync.WaitGroup
	var forced, expired string
	var forcedErr, expiredErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		forced, forcedErr = session.Refresh(ctx)
	}()
	require.Eventually(t, func() bool { return fake.refreshes.Load() == 1 }, time.Second, time.Millisecond)
	go func() {
		defer wg.Done()
		expired, expiredErr = session.AccessToken(ctx)
	}()
	assert.Never(t, func() bool { return fake.refreshes.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	close(fake.release)
	wg.Wait()

	require.NoError(t, forcedErr)
	require.NoError(t, expiredErr)
	assert.Equal(t, forced, expired)
	assert.Equal(t, int32(1), fake.refreshes.Load())
}

func TestSession_Authorize(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	fake := &fakeAuthenticator{t: t, now: time.Now()}
	session := auth.NewSession(fake, nil, auth.WithLogger(zap.New(core)))

	req := httptest.NewRequest(http.MethodPost, "/graphql/", nil)
	session.Authorize(req)
	assert.Empty(t, req.Header.Get("Authorization"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sending request without token", logs.All()[0].Message)

	tokens, err := session.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/graphql/", nil)
	session.Authorize(req)
	assert.Equal(t, "Bearer "+tokens.Token, req.Header.Get("Authorization"))
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	session, _, _ := newSession(t, time.Now())

	_, err := session.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, session.Logout(ctx))

	_, err = session.Tokens(ctx)
	assert.True(t, errors.Is(err, auth.ErrNotLoggedIn))
}
