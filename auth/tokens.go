// Package auth keeps the JWT tokens of a logged in user and refreshes the
// access token before it expires.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Tokens are what a login returns. CsrfToken is only needed to refresh
// with a refresh token kept in a cookie.
type Tokens struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	CsrfToken    string `json:"csrfToken,omitempty"`
}

// Claims are the claims the API puts into its tokens.
type Claims struct {
	Type        string   `json:"type"`
	Email       string   `json:"email"`
	UserID      string   `json:"user_id"`
	IsStaff     bool     `json:"is_staff"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the claims of token without checking its signature,
// which only the API can do.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}

// ExpiresWithin reports whether the token expires before now+d. A token
// without an exp claim never expires.
func (c *Claims) ExpiresWithin(now time.Time, d time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Add(d).Before(c.ExpiresAt.Time)
}

// Expired reports whether the token is expired at now.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresWithin(now, 0)
}
