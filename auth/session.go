package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultLeeway is how long before expiry an access token is refreshed.
const DefaultLeeway = 30 * time.Second

const refreshKey = "refresh"

// Authenticator talks to the API on behalf of a Session. It must not use
// the session's own request modifier.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Tokens, error)
	Refresh(ctx context.Context, tokens Tokens) (Tokens, error)
}

// Session hands out a valid access token, refreshing it when it is about
// to expire. Concurrent callers share a single refresh.
type Session struct {
	auth   Authenticator
	store  TokenStore
	leeway time.Duration
	logger *zap.Logger
	now    func() time.Time
	group  singleflight.Group
}

type SessionOption func(*Session)

func WithLeeway(d time.Duration) SessionOption {
	return func(s *Session) { s.leeway = d }
}

func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func NewSession(a Authenticator, store TokenStore, opts ...SessionOption) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Session{
		auth:   a,
		store:  store,
		leeway: DefaultLeeway,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates with email and password and stores the tokens.
func (s *Session) Login(ctx context.Context, email, password string) (Tokens, error) {
	tokens, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return Tokens{}, err
	}
	if err := s.store.Save(ctx, tokens); err != nil {
		return Tokens{}, err
	}
	s.logger.Info("logged in", zap.String("email", email))
	return tokens, nil
}

// Logout forgets the stored tokens.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Tokens returns the stored tokens as they are.
func (s *Session) Tokens(ctx context.Context) (Tokens, error) {
	return s.store.Load(ctx)
}

// AccessToken returns an access token valid for at least the leeway.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	tokens, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	claims, err := ParseClaims(tokens.Token)
	if err != nil {
		return "", err
	}
	if !claims.ExpiresWithin(s.now(), s.leeway) {
		return tokens.Token, nil
	}
	return s.do(ctx, false)
}

// Refresh obtains a new access token with the stored refresh token, even
// when the current one is still valid. A call made while a refresh is in
// flight gets the result of that refresh.
func (s *Session) Refresh(ctx context.Context) (string, error) {
	return s.do(ctx, true)
}

// do joins the refresh in flight or starts one. The refresh outlives the
// caller that started it; each caller only stops waiting when its own
// context is done.
func (s *Session) do(ctx context.Context, force bool) (string, error) {
	ch := s.group.DoChan(refreshKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx), force)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Session) refresh(ctx context.Context, force bool) (string, error) {
	tokens, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	// Another flight may have refreshed the token since the caller looked.
	if !force {
		if access, err := ParseClaims(tokens.Token); err == nil && !access.ExpiresWithin(s.now(), s.leeway) {
			return tokens.Token, nil
		}
	}
	if tokens.RefreshToken == "" {
		return "", fmt.Errorf("%w: no refresh token", ErrTokenExpired)
	}
	claims, err := ParseClaims(tokens.RefreshToken)
	if err != nil {
		return "", err
	}
	if claims.Expired(s.now()) {
		return "", fmt.Errorf("%w: refresh token expired at %v", ErrTokenExpired, claims.ExpiresAt.Time)
	}

	refreshed, err := s.auth.Refresh(ctx, tokens)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	if refreshed.Token == "" {
		return "", errors.New("failed to refresh token: empty access token")
	}
	tokens.Token = refreshed.Token
	if refreshed.RefreshToken != "" {
		tokens.RefreshToken = refreshed.RefreshToken
	}
	if refreshed.CsrfToken != "" {
		tokens.CsrfToken = refreshed.CsrfToken
	}
	if err := s.store.Save(ctx, tokens); err != nil {
		return "", err
	}
	s.logger.Debug("access token refreshed", zap.String("email", claims.Email))
	return tokens.Token, nil
}

// Authorize sets the Authorization header of req. Without a usable token
// the request is sent anonymously and the failure is logged.
func (s *Session) Authorize(req *http.Request) {
	token, err := s.AccessToken(req.Context())
	if err != nil {
		s.logger.Warn("sending request without token", zap.Error(err))
		return
	}
	SetBearer(req, token)
}

// SetBearer sets the Authorization header of req to token.
func SetBearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}
