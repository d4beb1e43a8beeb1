package saleor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/go-saleor-client/auth"
	"github.com/llehouerou/go-saleor-client/document"
)

var (
	tokenCreateOp         = operation{name: "TokenCreate", doc: document.TokenCreateDocument, mutation: true}
	tokenRefreshOp        = operation{name: "TokenRefresh", doc: document.TokenRefreshDocument, mutation: true}
	tokenVerifyOp         = operation{name: "TokenVerify", doc: document.TokenVerifyDocument, mutation: true}
	tokensDeactivateAllOp = operation{name: "TokensDeactivateAll", doc: document.TokensDeactivateAllDocument, mutation: true}
	meOp                  = operation{name: "Me", doc: document.MeDocument}
)

// TokenCreate logs in with email and password. When the API rejects the
// credentials the payload is returned together with AccountErrors.
func (c *Client) TokenCreate(ctx context.Context, email, password string) (*TokenCreatePayload, error) {
	var m TokenCreateMutation
	vars := TokenCreateMutationVariables{Email: email, Password: password}
	if err := c.execute(ctx, tokenCreateOp, &m, vars); err != nil {
		return nil, err
	}
	if m.TokenCreate == nil {
		return nil, ErrNoPayload
	}
	if err := accountErrors(m.TokenCreate.Errors); err != nil {
		c.logger.Debug("token create rejected", zap.String("email", email), zap.Error(err))
		return m.TokenCreate, err
	}
	return m.TokenCreate, nil
}

// TokenRefresh exchanges a refresh token for a new access token. An empty
// refreshToken makes the API read it from its cookie, which requires
// csrfToken.
func (c *Client) TokenRefresh(ctx context.Context, refreshToken, csrfToken string) (*TokenRefreshPayload, error) {
	var m TokenRefreshMutation
	vars := TokenRefreshMutationVariables{
		CsrfToken:    optional(csrfToken),
		RefreshToken: optional(refreshToken),
	}
	if err := c.execute(ctx, tokenRefreshOp, &m, vars); err != nil {
		return nil, err
	}
	if m.TokenRefresh == nil {
		return nil, ErrNoPayload
	}
	return m.TokenRefresh, accountErrors(m.TokenRefresh.Errors)
}

// TokenVerify asks the API whether token is valid. An invalid token is
// reported through AccountErrors with IsValid false.
func (c *Client) TokenVerify(ctx context.Context, token string) (*TokenVerifyPayload, error) {
	var m TokenVerifyMutation
	if err := c.execute(ctx, tokenVerifyOp, &m, TokenVerifyMutationVariables{Token: token}); err != nil {
		return nil, err
	}
	if m.TokenVerify == nil {
		return nil, ErrNoPayload
	}
	return m.TokenVerify, accountErrors(m.TokenVerify.Errors)
}

// TokensDeactivateAll invalidates every token of the authenticated user.
func (c *Client) TokensDeactivateAll(ctx context.Context) error {
	var m TokensDeactivateAllMutation
	if err := c.execute(ctx, tokensDeactivateAllOp, &m, nil); err != nil {
		return err
	}
	if m.TokensDeactivateAll == nil {
		return ErrNoPayload
	}
	return accountErrors(m.TokensDeactivateAll.Errors)
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*MeUser, error) {
	var q MeQuery
	if err := c.execute(ctx, meOp, &q, nil); err != nil {
		return nil, err
	}
	if q.Me == nil {
		return nil, ErrNotAuthenticated
	}
	return q.Me, nil
}

// Authenticator adapts the client to auth.Session. The client must not be
// authorized by that session.
func (c *Client) Authenticator() auth.Authenticator {
	return authenticator{c}
}

type authenticator struct {
	c *Client
}

func (a authenticator) Login(ctx context.Context, email, password string) (auth.Tokens, error) {
	p, err := a.c.TokenCreate(ctx, email, password)
	if err != nil {
		return auth.Tokens{}, fmt.Errorf("login failed: %w", err)
	}
	if p.Token == nil {
		return auth.Tokens{}, fmt.Errorf("login failed: %w", ErrNoPayload)
	}
	return auth.Tokens{
		Token:        *p.Token,
		RefreshToken: deref(p.RefreshToken),
		CsrfToken:    deref(p.CsrfToken),
	}, nil
}

func (a authenticator) Refresh(ctx context.Context, tokens auth.Tokens) (auth.Tokens, error) {
	p, err := a.c.TokenRefresh(ctx, tokens.RefreshToken, tokens.CsrfToken)
	if err != nil {
		return auth.Tokens{}, err
	}
	if p.Token == nil {
		return auth.Tokens{}, ErrNoPayload
	}
	return auth.Tokens{Token: *p.Token}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
