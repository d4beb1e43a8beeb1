package saleor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/llehouerou/go-saleor-client/auth"
)

const fakeSchema = `
schema {
	query: Query
	mutation: Mutation
}
enum AccountErrorCode {
	INVALID_CREDENTIALS
	JWT_INVALID_TOKEN
	JWT_MISSING_TOKEN
	JWT_SIGNATURE_EXPIRED
}
enum PermissionEnum {
	MANAGE_ORDERS
	MANAGE_USERS
}
type AccountError {
	field: String
	message: String
	code: AccountErrorCode!
}
type UserPermission {
	code: PermissionEnum!
	name: String!
}
type User {
	id: ID!
	email: String!
	firstName: String!
	lastName: String!
	isStaff: Boolean!
	isActive: Boolean!
	userPermissions: [UserPermission!]
}
type CreateToken {
	token: String
	refreshToken: String
	csrfToken: String
	user: User
	accountErrors: [AccountError!]!
	errors: [AccountError!]!
}
type RefreshToken {
	token: String
	user: User
	accountErrors: [AccountError!]!
	errors: [AccountError!]!
}
type VerifyToken {
	user: User
	isValid: Boolean!
	payload: String
	accountErrors: [AccountError!]!
	errors: [AccountError!]!
}
type DeactivateAllUserTokens {
	accountErrors: [AccountError!]!
	errors: [AccountError!]!
}
type Query {
	me: User
}
type Mutation {
	tokenCreate(email: String!, password: String!): CreateToken
	tokenRefresh(csrfToken: String, refreshToken: String): RefreshToken
	tokenVerify(token: String!): VerifyToken
	tokensDeactivateAll: DeactivateAllUserTokens
}
`

const (
	fakeEmail    = "admin@example.com"
	fakePassword = "secret"
	fakeUserID   = "VXNlcjoyMQ=="
	fakeCsrf     = "csrf-token"
)

var fakeSecret = []byte("test-secret-for-unit-tests")

type tokenKey struct{}

// fakeAPI implements the account part of the API for a single staff user.
type fakeAPI struct {
	t          *testing.T
	accessTTL  time.Duration
	mu         sync.Mutex
	generation int
	operations []string
	queries    []string
}

type recordedRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
}

func newFakeServer(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{t: t, accessTTL: 5 * time.Minute}
	s, err := graphql.ParseSchema(fakeSchema, api)
	if err != nil {
		t.Fatalf("failed to parse schema: %v", err)
	}
	handler := &relay.Handler{Schema: s}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req recordedRequest
		_ = json.Unmarshal(body, &req)
		api.mu.Lock()
		api.operations = append(api.operations, req.OperationName)
		api.queries = append(api.queries, req.Query)
		api.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
			r = r.WithContext(context.WithValue(r.Context(), tokenKey{}, token))
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return api, server
}

func (a *fakeAPI) recorded() (operations, queries []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.operations...), append([]string(nil), a.queries...)
}

func (a *fakeAPI) setAccessTTL(ttl time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessTTL = ttl
}

func (a *fakeAPI) issue(typ string, ttl time.Duration) string {
	a.mu.Lock()
	gen := a.generation
	a.mu.Unlock()
	now := time.Now()
	claims := &auth.Claims{
		Type:    typ,
		Email:   fakeEmail,
		UserID:  fakeUserID,
		IsStaff: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(gen),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(fakeSecret)
	if err != nil {
		a.t.Errorf("failed to sign token: %v", err)
	}
	return token
}

// verify returns the error code for an unusable token, or "" when the
// token is valid and of type typ.
func (a *fakeAPI) verify(token, typ string) string {
	claims := &auth.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return fakeSecret, nil })
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "JWT_SIGNATURE_EXPIRED"
	case err != nil || claims.Type != typ:
		return "JWT_INVALID_TOKEN"
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if claims.ID != strconv.Itoa(a.generation) {
		return "JWT_INVALID_TOKEN"
	}
	return ""
}

func (a *fakeAPI) currentUser(ctx context.Context) *userResolver {
	token, _ := ctx.Value(tokenKey{}).(string)
	if token == "" || a.verify(token, auth.TokenTypeAccess) != "" {
		return nil
	}
	return &userResolver{}
}

func (a *fakeAPI) Me(ctx context.Context) *userResolver {
	return a.currentUser(ctx)
}

func (a *fakeAPI) TokenCreate(args struct {
	Email    string
	Password string
}) *createTokenResolver {
	if args.Email != fakeEmail || args.Password != fakePassword {
		return &createTokenResolver{payloadErrors: failed("INVALID_CREDENTIALS", "email", "Please, enter valid credentials")}
	}
	a.mu.Lock()
	ttl := a.accessTTL
	a.mu.Unlock()
	return &createTokenResolver{
		token:   a.issue(auth.TokenTypeAccess, ttl),
		refresh: a.issue(auth.TokenTypeRefresh, 30*24*time.Hour),
		csrf:    fakeCsrf,
		user:    &userResolver{},
	}
}

func (a *fakeAPI) TokenRefresh(args struct {
	CsrfToken    *string
	RefreshToken *string
}) *refreshTokenResolver {
	if args.RefreshToken == nil {
		return &refreshTokenResolver{payloadErrors: failed("JWT_MISSING_TOKEN", "refreshToken", "Missing refreshToken")}
	}
	if code := a.verify(*args.RefreshToken, auth.TokenTypeRefresh); code != "" {
		return &refreshTokenResolver{payloadErrors: failed(code, "refreshToken", "Invalid refresh token")}
	}
	return &refreshTokenResolver{token: a.issue(auth.TokenTypeAccess, time.Hour), user: &userResolver{}}
}

func (a *fakeAPI) TokenVerify(args struct{ Token string }) *verifyTokenResolver {
	if code := a.verify(args.Token, auth.TokenTypeAccess); code != "" {
		return &verifyTokenResolver{payloadErrors: failed(code, "token", "Invalid token")}
	}
	return &verifyTokenResolver{valid: true, user: &userResolver{}}
}

func (a *fakeAPI) TokensDeactivateAll(ctx context.Context) *deactivateResolver {
	if a.currentUser(ctx) == nil {
		return nil
	}
	a.mu.Lock()
	a.generation++
	a.mu.Unlock()
	return &deactivateResolver{}
}

type accountErrorResolver struct {
	code, field, message string
}

func (r *accountErrorResolver) Code() string     { return r.code }
func (r *accountErrorResolver) Field() *string   { return &r.field }
func (r *accountErrorResolver) Message() *string { return &r.message }

type payloadErrors struct {
	errs []*accountErrorResolver
}

func failed(code, field, message string) payloadErrors {
	return payloadErrors{errs: []*accountErrorResolver{{code: code, field: field, message: message}}}
}

func (p *payloadErrors) AccountErrors() []*accountErrorResolver { return p.errs }
func (p *payloadErrors) Errors() []*accountErrorResolver        { return p.errs }

type userResolver struct{}

func (r *userResolver) ID() graphql.ID    { return graphql.ID(fakeUserID) }
func (r *userResolver) Email() string     { return fakeEmail }
func (r *userResolver) FirstName() string { return "Ada" }
func (r *userResolver) LastName() string  { return "Lovelace" }
func (r *userResolver) IsStaff() bool     { return true }
func (r *userResolver) IsActive() bool    { return true }
func (r *userResolver) UserPermissions() *[]*permissionResolver {
	return &[]*permissionResolver{{code: "MANAGE_ORDERS", name: "Manage orders."}}
}

type permissionResolver struct {
	code, name string
}

func (r *permissionResolver) Code() string { return r.code }
func (r *permissionResolver) Name() string { return r.name }

type createTokenResolver struct {
	payloadErrors
	token, refresh, csrf string
	user                 *userResolver
}

func (r *createTokenResolver) Token() *string        { return nonEmpty(r.token) }
func (r *createTokenResolver) RefreshToken() *string { return nonEmpty(r.refresh) }
func (r *createTokenResolver) CsrfToken() *string    { return nonEmpty(r.csrf) }
func (r *createTokenResolver) User() *userResolver   { return r.user }

type refreshTokenResolver struct {
	payloadErrors
	token string
	user  *userResolver
}

func (r *refreshTokenResolver) Token() *string      { return nonEmpty(r.token) }
func (r *refreshTokenResolver) User() *userResolver { return r.user }

type verifyTokenResolver struct {
	payloadErrors
	valid bool
	user  *userResolver
}

func (r *verifyTokenResolver) IsValid() bool       { return r.valid }
func (r *verifyTokenResolver) User() *userResolver { return r.user }
func (r *verifyTokenResolver) Payload() *string {
	if !r.valid {
		return nil
	}
	email := fakeEmail
	return &email
}

type deactivateResolver struct {
	payloadErrors
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
