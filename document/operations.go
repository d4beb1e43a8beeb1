package document

import "github.com/vektah/gqlparser/v2/ast"

// AccountErrorFragment is the selection shared by every account mutation.
const AccountErrorFragment = `fragment AccountError on AccountError {
  code
  field
  message
}
`

const TokenCreateSource = `mutation TokenCreate($email: String!, $password: String!) {
  tokenCreate(email: $email, password: $password) {
    csrfToken
    refreshToken
    token
    errors: accountErrors {
      ...AccountError
    }
    user {
      id
      email
    }
  }
}
` + AccountErrorFragment

const TokenRefreshSource = `mutation TokenRefresh($csrfToken: String, $refreshToken: String) {
  tokenRefresh(csrfToken: $csrfToken, refreshToken: $refreshToken) {
    token
    errors: accountErrors {
      ...AccountError
    }
    user {
      id
      email
    }
  }
}
` + AccountErrorFragment

const TokenVerifySource = `mutation TokenVerify($token: String!) {
  tokenVerify(token: $token) {
    isValid
    payload
    errors: accountErrors {
      ...AccountError
    }
    user {
      id
      email
    }
  }
}
` + AccountErrorFragment

const TokensDeactivateAllSource = `mutation TokensDeactivateAll {
  tokensDeactivateAll {
    errors: accountErrors {
      ...AccountError
    }
  }
}
` + AccountErrorFragment

const MeSource = `query Me {
  me {
    id
    email
    firstName
    lastName
    isStaff
    isActive
    userPermissions {
      code
      name
    }
  }
}
`

var (
	// TokenCreateDocument logs a user in with email and password.
	TokenCreateDocument         = MustParse(TokenCreateSource)
	TokenRefreshDocument        = MustParse(TokenRefreshSource)
	TokenVerifyDocument         = MustParse(TokenVerifySource)
	TokensDeactivateAllDocument = MustParse(TokensDeactivateAllSource)
	MeDocument                  = MustParse(MeSource)
)

// Operations maps operation names to their documents.
var Operations = map[string]*ast.QueryDocument{
	"TokenCreate":         TokenCreateDocument,
	"TokenRefresh":        TokenRefreshDocument,
	"TokenVerify":         TokenVerifyDocument,
	"TokensDeactivateAll": TokensDeactivateAllDocument,
	"Me":                  MeDocument,
}
