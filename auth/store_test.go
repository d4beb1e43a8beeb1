package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-saleor-client/auth"
)

func newRedisStore(t *testing.T) (*auth.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return auth.NewRedisStore(client, "test:session"), mr
}

func testStore(t *testing.T, store auth.TokenStore) {
	ctx := context.Background()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, auth.ErrNotLoggedIn)

	tokens := auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, time.Now().Add(5*time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, time.Now().Add(time.Hour)),
		CsrfToken:    "csrf",
	}
	require.NoError(t, store.Save(ctx, tokens))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens, got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, auth.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saleorctl", "session.json")
	testStore(t, auth.NewFileStore(path))

	store := auth.NewFileStore(path)
	require.NoError(t, store.Save(context.Background(), auth.Tokens{Token: "opaque"}))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := auth.NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	testStore(t, store)
}

func TestRedisStore_ExpiresWithRefreshToken(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, auth.Tokens{
		Token:        makeToken(t, auth.TokenTypeAccess, time.Now().Add(5*time.Minute)),
		RefreshToken: makeToken(t, auth.TokenTypeRefresh, time.Now().Add(time.Hour)),
	}))
	ttl := mr.TTL("test:session")
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	mr.FastForward(2 * time.Hour)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestRedisStore_NoExpiryForOpaqueTokens(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, store.Save(context.Background(), auth.Tokens{Token: "opaque"}))
	assert.Equal(t, time.Duration(0), mr.TTL("test:session"))
}

func TestRedisStore_CorruptValue(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("test:session", "not json"))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.Save(context.Background(), auth.Tokens{Token: "opaque"}))
}

func TestNewRedisStore_DefaultKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := auth.NewRedisStore(client, "")
	require.NoError(t, store.Save(context.Background(), auth.Tokens{Token: "opaque"}))
	assert.True(t, mr.Exists(auth.DefaultRedisKey))
}
