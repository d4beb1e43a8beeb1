// Package graphql is a GraphQL-over-HTTP client. Operations are either
// built from tagged Go structs (Query, Mutate) or given as document text
// (Exec); in both cases the "data" member of the response is decoded into
// the caller's struct.
package graphql

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"go.uber.org/zap"

	"github.com/llehouerou/go-saleor-client/pkg/jsonutil"
)

// RequestModifier tweaks each outgoing request, typically to set an
// Authorization header.
type RequestModifier func(*http.Request)

// Client is a GraphQL client.
//
// The With* methods return a modified copy and leave the receiver
// untouched, so always use the returned Client:
//
//	client = client.WithDebug(true).WithRequestModifier(modifier)
type Client struct {
	url             string
	httpClient      *http.Client
	requestModifier RequestModifier
	debug           bool
	logger          *zap.Logger
	retry           failsafe.Executor[*http.Response]
}

// NewClient creates a client for the GraphQL endpoint at url.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     zap.NewNop(),
	}
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Query builds a query from q, executes it and decodes the response into q,
// which must be a pointer to a struct.
func (c *Client) Query(ctx context.Context, q any, variables any, options ...Option) error {
	return c.do(ctx, queryOperation, q, variables, options...)
}

// Mutate is Query for mutations.
func (c *Client) Mutate(ctx context.Context, m any, variables any, options ...Option) error {
	return c.do(ctx, mutationOperation, m, variables, options...)
}

// QueryRaw is Query returning the raw "data" member instead of decoding it.
func (c *Client) QueryRaw(ctx context.Context, q any, variables any, options ...Option) ([]byte, error) {
	return c.doRaw(ctx, queryOperation, q, variables, options...)
}

// MutateRaw is Mutate returning the raw "data" member instead of decoding it.
func (c *Client) MutateRaw(ctx context.Context, m any, variables any, options ...Option) ([]byte, error) {
	return c.doRaw(ctx, mutationOperation, m, variables, options...)
}

// Exec sends a prebuilt document and decodes the response into v. The
// document selects the fields; v only has to accept them.
func (c *Client) Exec(ctx context.Context, query string, v any, variables any, options ...Option) error {
	data, x, errs := c.request(ctx, query, variables, options)
	return c.processResponse(v, data, x, errs)
}

// ExecRaw sends a prebuilt document and returns the raw "data" member.
func (c *Client) ExecRaw(ctx context.Context, query string, variables any, options ...Option) ([]byte, error) {
	data, _, errs := c.request(ctx, query, variables, options)
	if len(errs) > 0 {
		return data, errs
	}
	return data, nil
}

func (c *Client) buildAndRequest(ctx context.Context, op operationType, v any, variables any, options ...Option) ([]byte, *exchange, Errors) {
	query, err := constructOperation(op, v, variables, options...)
	if err != nil {
		return nil, nil, newSimpleErrors(ErrGraphQLEncode, err)
	}
	return c.request(ctx, query, variables, options)
}

func (c *Client) doRaw(ctx context.Context, op operationType, v any, variables any, options ...Option) ([]byte, error) {
	data, _, errs := c.buildAndRequest(ctx, op, v, variables, options...)
	if len(errs) > 0 {
		return data, errs
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, op operationType, v any, variables any, options ...Option) error {
	data, x, errs := c.buildAndRequest(ctx, op, v, variables, options...)
	return c.processResponse(v, data, x, errs)
}

// exchange keeps what debug mode attaches to errors.
type exchange struct {
	req      *http.Request
	reqBody  []byte
	resp     *http.Response
	respBody []byte
}

type requestBody struct {
	Query         string `json:"query"`
	Variables     any    `json:"variables,omitempty"`
	OperationName string `json:"operationName,omitempty"`
}

// BuildRequest creates the POST request for a document. The returned body
// bytes are what the request sends.
func (c *Client) BuildRequest(ctx context.Context, query string, variables any, operationName string) (*http.Request, []byte, error) {
	if !hasVariables(variables) {
		variables = nil
	}
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(requestBody{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	})
	if err != nil {
		return nil, nil, err
	}
	body := buf.Bytes()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, body, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.requestModifier != nil {
		c.requestModifier(req)
	}
	return req, body, nil
}

// send performs the request, retrying transient failures when a retry
// policy is configured. Every attempt gets a fresh copy of the body.
func (c *Client) send(ctx context.Context, req *http.Request, body []byte) (*http.Response, error) {
	attempts := 0
	attempt := func() (*http.Response, error) {
		attempts++
		r := req.Clone(ctx)
		r.Body = io.NopCloser(bytes.NewReader(body))
		resp, err := c.httpClient.Do(r)
		if err == nil && resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			err = &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: b}
			resp = nil
		}
		if err != nil && c.retry != nil && isRetryable(err) {
			c.logger.Warn("graphql request attempt failed",
				zap.String("url", c.url),
				zap.Int("attempt", attempts),
				zap.Error(err))
		}
		return resp, err
	}
	if c.retry == nil {
		return attempt()
	}
	return c.retry.WithContext(ctx).Get(attempt)
}

func (c *Client) request(ctx context.Context, query string, variables any, options []Option) ([]byte, *exchange, Errors) {
	start := time.Now()
	operationName := operationNameOf(options)
	log := c.logger.With(zap.String("operation", operationName))

	req, reqBody, err := c.BuildRequest(ctx, query, variables, operationName)
	x := &exchange{req: req, reqBody: reqBody}
	if err != nil {
		if reqBody == nil {
			return nil, x, newSimpleErrors(ErrJsonEncode, err)
		}
		e := newError(ErrRequestError, fmt.Errorf("problem constructing request: %w", err))
		return nil, x, Errors{c.decorate(e, x)}
	}

	resp, err := c.send(ctx, req, reqBody)
	if err != nil {
		log.Debug("graphql request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, x, Errors{c.decorate(newError(ErrRequestError, err), x)}
	}
	defer func() { _ = resp.Body.Close() }()
	x.resp = resp

	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, x, newSimpleErrors(ErrJsonDecode, fmt.Errorf("problem trying to create gzip reader: %w", err))
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}
	x.respBody, err = io.ReadAll(r)
	if err != nil {
		return nil, x, Errors{c.decorate(newError(ErrJsonDecode, err), x)}
	}

	data, gqlErrors, err := decodeResponse(x.respBody)
	if err != nil {
		return nil, x, Errors{c.decorate(newError(ErrJsonDecode, err), x)}
	}
	log.Debug("graphql request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("errors", len(gqlErrors)))

	if len(gqlErrors) > 0 {
		gqlErrors[0] = c.decorate(gqlErrors[0], x)
		return data, x, gqlErrors
	}
	return data, x, nil
}

// decodeResponse splits a GraphQL response into its "data" and "errors"
// members. A null data member comes back as nil.
func decodeResponse(body []byte) ([]byte, Errors, error) {
	var out struct {
		Data   json.RawMessage `json:"data"`
		Errors Errors          `json:"errors"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, nil, err
	}
	data := []byte(out.Data)
	if len(data) == 0 || string(data) == "null" {
		data = nil
	}
	return data, out.Errors, nil
}

func (c *Client) processResponse(v any, data []byte, x *exchange, errs Errors) error {
	if len(data) > 0 {
		if err := jsonutil.UnmarshalGraphQL(data, v); err != nil {
			e := newError(ErrGraphQLDecode, err)
			if x != nil {
				e = c.decorate(e, &exchange{resp: x.resp, respBody: x.respBody})
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// decorate attaches request and response details to e in debug mode.
func (c *Client) decorate(e Error, x *exchange) Error {
	if !c.debug || x == nil {
		return e
	}
	if x.req != nil && x.reqBody != nil {
		e = e.withDebugInfo("request", x.req.Header, bytes.NewReader(x.reqBody))
	}
	if x.resp != nil && x.respBody != nil {
		e = e.withDebugInfo("response", x.resp.Header, bytes.NewReader(x.respBody))
	}
	return e
}

func (c *Client) clone() *Client {
	cp := *c
	return &cp
}

// WithRequestModifier returns a copy of the client that calls f on every
// outgoing request.
func (c *Client) WithRequestModifier(f RequestModifier) *Client {
	clone := c.clone()
	clone.requestModifier = f
	return clone
}

// WithDebug returns a copy of the client that, when debug is true, attaches
// request and response headers and bodies to error extensions.
func (c *Client) WithDebug(debug bool) *Client {
	clone := c.clone()
	clone.debug = debug
	return clone
}

// WithLogger returns a copy of the client logging to logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	clone := c.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	clone.logger = logger
	return clone
}

// WithRetry returns a copy of the client that retries network failures and
// 429/502/503/504 responses. A config with MaxRetries <= 0 disables retrying.
func (c *Client) WithRetry(cfg RetryConfig) *Client {
	clone := c.clone()
	if cfg.MaxRetries <= 0 {
		clone.retry = nil
	} else {
		clone.retry = newRetryExecutor(cfg)
	}
	return clone
}

// UnmarshalGraphQL decodes GraphQL response data into the query structure
// pointed to by v.
func UnmarshalGraphQL(data []byte, v any) error {
	return jsonutil.UnmarshalGraphQL(data, v)
}
