package saleor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	saleor "github.com/llehouerou/go-saleor-client"
	"github.com/llehouerou/go-saleor-client/auth"
	"github.com/llehouerou/go-saleor-client/schema"
)

// modes runs f once with documents and once with constructed operations.
func modes(t *testing.T, f func(t *testing.T, constructed bool)) {
	t.Run("document", func(t *testing.T) { f(t, false) })
	t.Run("constructed", func(t *testing.T) { f(t, true) })
}

func newClient(url string, constructed bool) *saleor.Client {
	return saleor.NewClient(url, nil).WithConstructedOperations(constructed)
}

func TestTokenCreate(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		api, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		p, err := client.TokenCreate(context.Background(), fakeEmail, fakePassword)
		require.NoError(t, err)
		require.NotNil(t, p.Token)
		require.NotNil(t, p.RefreshToken)
		require.NotNil(t, p.CsrfToken)
		assert.Equal(t, fakeCsrf, *p.CsrfToken)
		assert.Empty(t, p.Errors)
		require.NotNil(t, p.User)
		assert.Equal(t, schema.ID(fakeUserID), p.User.ID)
		assert.Equal(t, fakeEmail, p.User.Email)

		claims, err := auth.ParseClaims(*p.Token)
		require.NoError(t, err)
		assert.Equal(t, auth.TokenTypeAccess, claims.Type)

		operations, _ := api.recorded()
		assert.Equal(t, []string{"TokenCreate"}, operations)
	})
}

func TestTokenCreate_InvalidCredentials(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		_, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		p, err := client.TokenCreate(context.Background(), fakeEmail, "wrong")
		require.Error(t, err)
		require.NotNil(t, p, "the payload comes with the errors")
		assert.Nil(t, p.Token)

		var accountErrs saleor.AccountErrors
		require.True(t, errors.As(err, &accountErrs))
		assert.True(t, accountErrs.HasCode(schema.AccountErrorCodeInvalidCredentials))
		assert.False(t, accountErrs.HasCode(schema.AccountErrorCodeInactive))
		assert.Equal(t, "INVALID_CREDENTIALS (email): Please, enter valid credentials", err.Error())
	})
}

func TestTokenRefresh(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		ctx := context.Background()
		_, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		created, err := client.TokenCreate(ctx, fakeEmail, fakePassword)
		require.NoError(t, err)

		p, err := client.TokenRefresh(ctx, *created.RefreshToken, "")
		require.NoError(t, err)
		require.NotNil(t, p.Token)
		assert.Equal(t, fakeEmail, p.User.Email)

		p, err = client.TokenRefresh(ctx, "", fakeCsrf)
		var accountErrs saleor.AccountErrors
		require.ErrorAs(t, err, &accountErrs)
		assert.True(t, accountErrs.HasCode(schema.AccountErrorCodeJWTMissingToken))
		assert.Nil(t, p.Token)

		_, err = client.TokenRefresh(ctx, *created.Token, "")
		require.ErrorAs(t, err, &accountErrs)
		assert.True(t, accountErrs.HasCode(schema.AccountErrorCodeJWTInvalidToken), "an access token cannot refresh")
	})
}

func TestTokenVerify(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		ctx := context.Background()
		_, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		created, err := client.TokenCreate(ctx, fakeEmail, fakePassword)
		require.NoError(t, err)

		p, err := client.TokenVerify(ctx, *created.Token)
		require.NoError(t, err)
		assert.True(t, p.IsValid)
		assert.JSONEq(t, `"admin@example.com"`, string(p.Payload))

		p, err = client.TokenVerify(ctx, "garbage")
		var accountErrs saleor.AccountErrors
		require.ErrorAs(t, err, &accountErrs)
		assert.True(t, accountErrs.HasCode(schema.AccountErrorCodeJWTInvalidToken))
		assert.False(t, p.IsValid)
		assert.Nil(t, p.Payload)
	})
}

func TestMe(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		ctx := context.Background()
		_, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		_, err := client.Me(ctx)
		assert.ErrorIs(t, err, saleor.ErrNotAuthenticated)

		created, err := client.TokenCreate(ctx, fakeEmail, fakePassword)
		require.NoError(t, err)

		me, err := client.WithAuthToken(*created.Token).Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, &saleor.MeUser{
			ID:        fakeUserID,
			Email:     fakeEmail,
			FirstName: "Ada",
			LastName:  "Lovelace",
			IsStaff:   true,
			IsActive:  true,
			UserPermissions: []saleor.UserPermission{
				{Code: schema.PermissionEnumManageOrders, Name: "Manage orders."},
			},
		}, me)
	})
}

func TestTokensDeactivateAll(t *testing.T) {
	modes(t, func(t *testing.T, constructed bool) {
		ctx := context.Background()
		_, server := newFakeServer(t)
		client := newClient(server.URL, constructed)

		assert.ErrorIs(t, client.TokensDeactivateAll(ctx), saleor.ErrNoPayload, "anonymous")

		created, err := client.TokenCreate(ctx, fakeEmail, fakePassword)
		require.NoError(t, err)
		authed := client.WithAuthToken(*created.Token)

		require.NoError(t, authed.TokensDeactivateAll(ctx))

		_, err = authed.Me(ctx)
		assert.ErrorIs(t, err, saleor.ErrNotAuthenticated, "tokens issued before are revoked")
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	api, server := newFakeServer(t)
	api.setAccessTTL(0)
	client := saleor.NewClient(server.URL, nil)

	session := auth.NewSession(client.Authenticator(), auth.NewMemoryStore())
	tokens, err := session.Login(ctx, fakeEmail, fakePassword)
	require.NoError(t, err)
	assert.Equal(t, fakeCsrf, tokens.CsrfToken)

	me, err := client.WithSession(session).Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, fakeEmail, me.Email)

	operations, _ := api.recorded()
	assert.Equal(t, []string{"TokenCreate", "TokenRefresh", "Me"}, operations, "the expired access token is refreshed first")

	_, err = session.Login(ctx, fakeEmail, "wrong")
	var accountErrs saleor.AccountErrors
	require.ErrorAs(t, err, &accountErrs)
	assert.True(t, accountErrs.HasCode(schema.AccountErrorCodeInvalidCredentials))
}
