package saleor

import (
	"github.com/llehouerou/go-saleor-client/schema"
)

type AccountErrorCode = schema.AccountErrorCode

// AccountErrorFragment is the AccountError fragment: code, field and message.
type AccountErrorFragment struct {
	Code    AccountErrorCode `graphql:"code" json:"code"`
	Field   *string          `graphql:"field" json:"field"`
	Message *string          `graphql:"message" json:"message"`
}

// TokenUser is the user selected by the token mutations.
type TokenUser struct {
	ID    schema.ID `graphql:"id" json:"id"`
	Email string    `graphql:"email" json:"email"`
}

// TokenCreateMutation is the result of the TokenCreate mutation.
type TokenCreateMutation struct {
	TokenCreate *TokenCreatePayload `graphql:"tokenCreate(email: $email, password: $password)" json:"tokenCreate"`
}

type TokenCreatePayload struct {
	CsrfToken    *string                `graphql:"csrfToken" json:"csrfToken"`
	RefreshToken *string                `graphql:"refreshToken" json:"refreshToken"`
	Token        *string                `graphql:"token" json:"token"`
	Errors       []AccountErrorFragment `graphql:"errors: accountErrors" json:"errors"`
	User         *TokenUser             `graphql:"user" json:"user"`
}

type TokenCreateMutationVariables struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRefreshMutation struct {
	TokenRefresh *TokenRefreshPayload `graphql:"tokenRefresh(csrfToken: $csrfToken, refreshToken: $refreshToken)" json:"tokenRefresh"`
}

type TokenRefreshPayload struct {
	Token  *string                `graphql:"token" json:"token"`
	Errors []AccountErrorFragment `graphql:"errors: accountErrors" json:"errors"`
	User   *TokenUser             `graphql:"user" json:"user"`
}

// TokenRefreshMutationVariables are both optional: without a refresh token
// the API reads it from its cookie and then requires the CSRF token.
type TokenRefreshMutationVariables struct {
	CsrfToken    *string `json:"csrfToken"`
	RefreshToken *string `json:"refreshToken"`
}

type TokenVerifyMutation struct {
	TokenVerify *TokenVerifyPayload `graphql:"tokenVerify(token: $token)" json:"tokenVerify"`
}

type TokenVerifyPayload struct {
	IsValid bool                   `graphql:"isValid" json:"isValid"`
	Payload schema.GenericScalar   `graphql:"payload" json:"payload"`
	Errors  []AccountErrorFragment `graphql:"errors: accountErrors" json:"errors"`
	User    *TokenUser             `graphql:"user" json:"user"`
}

type TokenVerifyMutationVariables struct {
	Token string `json:"token"`
}

type TokensDeactivateAllMutation struct {
	TokensDeactivateAll *TokensDeactivateAllPayload `graphql:"tokensDeactivateAll" json:"tokensDeactivateAll"`
}

type TokensDeactivateAllPayload struct {
	Errors []AccountErrorFragment `graphql:"errors: accountErrors" json:"errors"`
}

// MeUser is the user selected by the Me query.
type MeUser struct {
	ID              schema.ID        `graphql:"id" json:"id"`
	Email           string           `graphql:"email" json:"email"`
	FirstName       string           `graphql:"firstName" json:"firstName"`
	LastName        string           `graphql:"lastName" json:"lastName"`
	IsStaff         bool             `graphql:"isStaff" json:"isStaff"`
	IsActive        bool             `graphql:"isActive" json:"isActive"`
	UserPermissions []UserPermission `graphql:"userPermissions" json:"userPermissions"`
}

type UserPermission struct {
	Code schema.PermissionEnum `graphql:"code" json:"code"`
	Name string                `graphql:"name" json:"name"`
}

type MeQuery struct {
	Me *MeUser `graphql:"me" json:"me"`
}
