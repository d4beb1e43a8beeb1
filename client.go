// Package saleor is a typed client for the Saleor GraphQL API.
//
// Operations are sent as the pre-parsed documents of package document. A
// client created WithConstructedOperations builds the same operations from
// the result structs instead.
package saleor

import (
	"context"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/llehouerou/go-saleor-client/auth"
	"github.com/llehouerou/go-saleor-client/document"
	"github.com/llehouerou/go-saleor-client/graphql"
)

// Client calls the API. Like graphql.Client it is immutable: the With*
// methods return a modified copy.
type Client struct {
	gql         *graphql.Client
	logger      *zap.Logger
	constructed bool
}

// NewClient creates a client for the API endpoint at url, usually ending
// in /graphql/. If httpClient is nil, http.DefaultClient is used.
func NewClient(url string, httpClient *http.Client) *Client {
	return &Client{
		gql:    graphql.NewClient(url, httpClient),
		logger: zap.NewNop(),
	}
}

// GraphQL returns the underlying transport, for operations this package
// does not type.
func (c *Client) GraphQL() *graphql.Client {
	return c.gql
}

func (c *Client) clone() *Client {
	cp := *c
	return &cp
}

// WithAuthToken returns a copy of the client sending token as a bearer
// token.
func (c *Client) WithAuthToken(token string) *Client {
	return c.WithRequestModifier(func(req *http.Request) {
		auth.SetBearer(req, token)
	})
}

// WithSession returns a copy of the client authorized by session. The
// session must refresh through a client without it.
func (c *Client) WithSession(session *auth.Session) *Client {
	return c.WithRequestModifier(session.Authorize)
}

func (c *Client) WithRequestModifier(f graphql.RequestModifier) *Client {
	clone := c.clone()
	clone.gql = c.gql.WithRequestModifier(f)
	return clone
}

func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	clone := c.clone()
	clone.logger = logger
	clone.gql = c.gql.WithLogger(logger)
	return clone
}

func (c *Client) WithRetry(cfg graphql.RetryConfig) *Client {
	clone := c.clone()
	clone.gql = c.gql.WithRetry(cfg)
	return clone
}

func (c *Client) WithDebug(debug bool) *Client {
	clone := c.clone()
	clone.gql = c.gql.WithDebug(debug)
	return clone
}

// WithConstructedOperations returns a copy of the client that builds
// operations from the result structs rather than sending the documents.
func (c *Client) WithConstructedOperations(constructed bool) *Client {
	clone := c.clone()
	clone.constructed = constructed
	return clone
}

// operation pairs a document with its name and kind.
type operation struct {
	name     string
	doc      *ast.QueryDocument
	mutation bool
}

func (c *Client) execute(ctx context.Context, op operation, v any, variables any) error {
	opts := []graphql.Option{graphql.OperationName(op.name)}
	switch {
	case !c.constructed:
		return c.gql.Exec(ctx, document.Print(op.doc), v, variables, opts...)
	case op.mutation:
		return c.gql.Mutate(ctx, v, variables, opts...)
	default:
		return c.gql.Query(ctx, v, variables, opts...)
	}
}
