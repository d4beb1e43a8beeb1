package graphql

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error codes stored under extensions["code"] for failures that happen on
// the client side of the exchange.
const (
	ErrRequestError  = "request_error"
	ErrJsonEncode    = "json_encode_error"
	ErrJsonDecode    = "json_decode_error"
	ErrGraphQLEncode = "graphql_encode_error"
	ErrGraphQLDecode = "graphql_decode_error"
)

// Errors is the "errors" array of a GraphQL response. When returned as an
// error it holds at least one element.
//
// See https://spec.graphql.org/October2021/#sec-Errors
type Errors []Error

// Error is one entry of a GraphQL "errors" array, or a client-side failure
// dressed the same way.
type Error struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
	Locations  []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations"`
	Path []any `json:"path,omitempty"`

	// err is the client-side failure the entry was built from.
	err error
}

// RequestInfo is the request part of the debug information.
type RequestInfo struct {
	Headers http.Header
	Body    string
}

// ResponseInfo is the response part of the debug information.
type ResponseInfo struct {
	Headers http.Header
	Body    string
}

// InternalExtensions is the debug information a client in debug mode
// attaches under extensions["internal"].
type InternalExtensions struct {
	Request  *RequestInfo
	Response *ResponseInfo
	Error    error
}

func (e Error) Error() string {
	return fmt.Sprintf("Message: %s, Locations: %+v", e.Message, e.Locations)
}

func (e Errors) Error() string {
	b := strings.Builder{}
	for _, err := range e {
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the client-side failures behind the entries, so errors.As
// reaches a *StatusError or a context error.
func (e Errors) Unwrap() []error {
	var errs []error
	for _, err := range e {
		if err.err != nil {
			errs = append(errs, err.err)
		}
	}
	return errs
}

// Unwrap returns the client-side failure e was built from, if any.
func (e Error) Unwrap() error {
	return e.err
}

// GetCode returns extensions["code"], or "" when absent.
func (e Error) GetCode() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// HasCode reports whether any entry carries the given extensions code.
func (e Errors) HasCode(code string) bool {
	for _, err := range e {
		if err.GetCode() == code {
			return true
		}
	}
	return false
}

// GetInternalExtensions returns the debug information, or nil when the
// error was produced without debug mode.
func (e Error) GetInternalExtensions() *InternalExtensions {
	internal, ok := e.Extensions["internal"].(map[string]any)
	if !ok {
		return nil
	}

	ext := &InternalExtensions{}
	if req, ok := internal["request"].(map[string]any); ok {
		ext.Request = &RequestInfo{}
		ext.Request.Headers, _ = req["headers"].(http.Header)
		ext.Request.Body, _ = req["body"].(string)
	}
	if resp, ok := internal["response"].(map[string]any); ok {
		ext.Response = &ResponseInfo{}
		ext.Response.Headers, _ = resp["headers"].(http.Header)
		ext.Response.Body, _ = resp["body"].(string)
	}
	ext.Error, _ = internal["error"].(error)
	return ext
}

func newError(code string, err error) Error {
	return Error{
		Message: err.Error(),
		Extensions: map[string]any{
			"code": code,
		},
		err: err,
	}
}

func newSimpleErrors(code string, err error) Errors {
	return Errors{newError(code, err)}
}

func (e Error) internalExtension() map[string]any {
	if ex, ok := e.Extensions["internal"].(map[string]any); ok {
		return ex
	}
	return make(map[string]any)
}

// withDebugInfo stores headers and body under extensions.internal[kind],
// kind being "request" or "response".
func (e Error) withDebugInfo(kind string, headers http.Header, body io.Reader) Error {
	internal := e.internalExtension()
	b, err := io.ReadAll(body)
	if err != nil {
		internal["error"] = err
	} else {
		internal[kind] = map[string]any{
			"headers": headers,
			"body":    string(b),
		}
	}
	if e.Extensions == nil {
		e.Extensions = make(map[string]any)
	}
	e.Extensions["internal"] = internal
	return e
}

// StatusError is the failure behind a request_error when the server answers
// with a status other than 200 OK. Reach it with errors.As.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v; body: %q", e.Status, e.Body)
}
