package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-saleor-client/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := a.execute(context.Background(), cmd)
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SALEOR_STORE_KIND", "file")
	t.Setenv("SALEOR_STORE_PATH", filepath.Join(dir, "session.json"))
	t.Setenv("SALEOR_RETRY_MAX_RETRIES", "0")
	return dir
}

func signToken(t *testing.T, typ string, ttl time.Duration) string {
	t.Helper()
	claims := &auth.Claims{
		Type:  typ,
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// cannedAPI answers each operation with a fixed response.
type cannedAPI struct {
	access, refresh, refreshed string
	deactivated                atomic.Bool
}

func newCannedAPI(t *testing.T) (*cannedAPI, *httptest.Server) {
	t.Helper()
	api := &cannedAPI{
		access:    signToken(t, auth.TokenTypeAccess, 5*time.Minute),
		refresh:   signToken(t, auth.TokenTypeRefresh, 24*time.Hour),
		refreshed: signToken(t, auth.TokenTypeAccess, time.Hour),
	}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return api, server
}

const cannedUser = `{"id":"VXNlcjoyMQ==","email":"admin@example.com"}`

func (a *cannedAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	authorized := !a.deactivated.Load() && (bearer == a.access || bearer == a.refreshed)

	var data string
	switch req.OperationName {
	case "TokenCreate":
		if req.Variables["password"] != "secret" {
			data = `{"tokenCreate":{"csrfToken":null,"refreshToken":null,"token":null,"errors":[{"code":"INVALID_CREDENTIALS","field":"email","message":"Please, enter valid credentials"}],"user":null}}`
		} else {
			data = fmt.Sprintf(`{"tokenCreate":{"csrfToken":"csrf","refreshToken":%q,"token":%q,"errors":[],"user":%s}}`, a.refresh, a.access, cannedUser)
		}
	case "TokenRefresh":
		data = fmt.Sprintf(`{"tokenRefresh":{"token":%q,"errors":[],"user":%s}}`, a.refreshed, cannedUser)
	case "TokenVerify":
		token, _ := req.Variables["token"].(string)
		if token == a.access || token == a.refreshed {
			data = fmt.Sprintf(`{"tokenVerify":{"isValid":true,"payload":{"type":"access"},"errors":[],"user":%s}}`, cannedUser)
		} else {
			data = `{"tokenVerify":{"isValid":false,"payload":null,"errors":[{"code":"JWT_INVALID_TOKEN","field":"token","message":"Invalid token"}],"user":null}}`
		}
	case "Me":
		if authorized {
			data = `{"me":{"id":"VXNlcjoyMQ==","email":"admin@example.com","firstName":"Ada","lastName":"Lovelace","isStaff":true,"isActive":true,"userPermissions":[{"code":"MANAGE_ORDERS","name":"Manage orders."}]}}`
		} else {
			data = `{"me":null}`
		}
	case "TokensDeactivateAll":
		if !authorized {
			data = `{"tokensDeactivateAll":null}`
		} else {
			a.deactivated.Store(true)
			data = `{"tokensDeactivateAll":{"errors":[]}}`
		}
	default:
		http.Error(w, "unknown operation", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"data":%s}`, data)
}

func TestIDCommands(t *testing.T) {
	out, err := run(t, "id", "encode", "Product", "72")
	require.NoError(t, err)
	assert.Equal(t, "UHJvZHVjdDo3Mg==\n", out)

	out, err = run(t, "id", "decode", "VXNlcjoyMQ==")
	require.NoError(t, err)
	assert.Equal(t, "User 21\n", out)

	_, err = run(t, "id", "decode", "not base64!")
	assert.Error(t, err)

	_, err = run(t, "id", "encode", "Product")
	assert.Error(t, err)
}

func TestDocumentCommands(t *testing.T) {
	out, err := run(t, "document", "print", "TokenCreate")
	require.NoError(t, err)
	assert.Contains(t, out, "mutation TokenCreate")
	assert.Contains(t, out, "fragment AccountError on AccountError")

	_, err = run(t, "document", "print", "Checkout")
	assert.EqualError(t, err, `unknown operation "Checkout"`)

	out, err = run(t, "document", "validate")
	require.NoError(t, err)
	assert.Equal(t, "Me: ok\nTokenCreate: ok\nTokenRefresh: ok\nTokenVerify: ok\nTokensDeactivateAll: ok\n", out)

	path := filepath.Join(t.TempDir(), "bad.graphql")
	require.NoError(t, os.WriteFile(path, []byte(`query { me { password } }`), 0o600))
	_, err = run(t, "document", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSessionCommands(t *testing.T) {
	isolate(t)
	api, server := newCannedAPI(t)
	url := "--url=" + server.URL

	_, err := run(t, "login", url)
	assert.ErrorContains(t, err, "email and password are required")

	_, err = run(t, "login", url, "--email", "admin@example.com", "--password", "wrong")
	assert.ErrorContains(t, err, "INVALID_CREDENTIALS")

	_, err = run(t, "me", url)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)

	t.Setenv("SALEOR_AUTH_PASSWORD", "secret")
	out, err := run(t, "login", url, "--email", "admin@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "logged in as admin@example.com, token expires at "), out)

	out, err = run(t, "me", url, "--field", "email")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com\n", out)

	out, err = run(t, "me", url, "--field", "userPermissions.#.code")
	require.NoError(t, err)
	assert.Equal(t, `["MANAGE_ORDERS"]`+"\n", out)

	_, err = run(t, "me", url, "--field", "nope")
	assert.EqualError(t, err, `field "nope" not found`)

	out, err = run(t, "verify", url, "--field", "isValid")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "verify", url, "--field", "errors.0.code", "garbage")
	assert.ErrorContains(t, err, "JWT_INVALID_TOKEN")
	assert.Equal(t, "JWT_INVALID_TOKEN\n", out)

	out, err = run(t, "refresh", url)
	require.NoError(t, err)
	assert.Contains(t, out, "token refreshed")

	out, err = run(t, "me", url, "--field", "firstName")
	require.NoError(t, err)
	assert.Equal(t, "Ada\n", out)

	out, err = run(t, "logout", url, "--all")
	require.NoError(t, err)
	assert.Equal(t, "logged out\n", out)
	assert.True(t, api.deactivated.Load())

	_, err = run(t, "me", url)
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestRedisSessionCommands(t *testing.T) {
	isolate(t)
	mr := miniredis.RunT(t)
	t.Setenv("SALEOR_STORE_KIND", "redis")
	t.Setenv("SALEOR_STORE_REDIS_ADDR", mr.Addr())
	t.Setenv("SALEOR_AUTH_EMAIL", "admin@example.com")
	t.Setenv("SALEOR_AUTH_PASSWORD", "secret")
	api, server := newCannedAPI(t)
	url := "--url=" + server.URL

	_, err := run(t, "login", url)
	require.NoError(t, err)
	assert.True(t, mr.Exists(auth.DefaultRedisKey))
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 5*time.Millisecond)

	// The server no longer knows the token, so the command fails after the
	// store was opened.
	api.deactivated.Store(true)
	_, err = run(t, "logout", url, "--all")
	require.ErrorContains(t, err, "failed to deactivate tokens")
	assert.True(t, mr.Exists(auth.DefaultRedisKey))
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 5*time.Millisecond)

	api.deactivated.Store(false)
	out, err := run(t, "logout", url, "--all")
	require.NoError(t, err)
	assert.Equal(t, "logged out\n", out)
	assert.False(t, mr.Exists(auth.DefaultRedisKey))
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInvalidURL(t *testing.T) {
	isolate(t)
	_, err := run(t, "me", "--url", "localhost")
	assert.ErrorContains(t, err, "api.url must be an absolute http(s) URL")
}
