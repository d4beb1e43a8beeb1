package graphql

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
)

func TestError_GetCode(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"no extensions", Error{Message: "boom"}, ""},
		{"string code", newError(ErrJsonDecode, errors.New("boom")), ErrJsonDecode},
		{"non-string code", Error{Extensions: map[string]any{"code": 42}}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.GetCode(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrors_HasCode(t *testing.T) {
	errs := Errors{
		{Message: "server side"},
		newError(ErrGraphQLDecode, errors.New("decode")),
	}
	if !errs.HasCode(ErrGraphQLDecode) {
		t.Error("expected graphql_decode_error to be found")
	}
	if errs.HasCode(ErrRequestError) {
		t.Error("did not expect request_error")
	}
}

func TestError_GetInternalExtensions(t *testing.T) {
	if ext := (Error{Message: "plain"}).GetInternalExtensions(); ext != nil {
		t.Errorf("got %+v, want nil", ext)
	}

	reqHeaders := http.Header{"Content-Type": []string{"application/json"}}
	respHeaders := http.Header{"X-Request-Id": []string{"abc"}}
	e := newError(ErrRequestError, errors.New("boom")).
		withDebugInfo("request", reqHeaders, bytes.NewReader([]byte(`{"query":"{shop{name}}"}`))).
		withDebugInfo("response", respHeaders, bytes.NewReader([]byte(`{"data":null}`)))

	ext := e.GetInternalExtensions()
	if ext == nil || ext.Request == nil || ext.Response == nil {
		t.Fatalf("got %+v", ext)
	}
	if got, want := ext.Request.Body, `{"query":"{shop{name}}"}`; got != want {
		t.Errorf("got request body %q, want %q", got, want)
	}
	if got, want := ext.Request.Headers.Get("Content-Type"), "application/json"; got != want {
		t.Errorf("got request header %q, want %q", got, want)
	}
	if got, want := ext.Response.Body, `{"data":null}`; got != want {
		t.Errorf("got response body %q, want %q", got, want)
	}
	if got, want := ext.Response.Headers.Get("X-Request-Id"), "abc"; got != want {
		t.Errorf("got response header %q, want %q", got, want)
	}
	if got, want := e.GetCode(), ErrRequestError; got != want {
		t.Errorf("got code %q, want %q", got, want)
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{StatusCode: 503, Status: "503 Service Unavailable", Body: []byte("down\n")}
	if got, want := err.Error(), `503 Service Unavailable; body: "down\n"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !isRetryable(err) {
		t.Error("503 should be retryable")
	}
	if isRetryable(&StatusError{StatusCode: 400}) {
		t.Error("400 should not be retryable")
	}
	if isRetryable(nil) {
		t.Error("nil should not be retryable")
	}
}
