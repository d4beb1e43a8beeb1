package saleor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPayload is returned when a mutation answers null without errors.
	ErrNoPayload = errors.New("mutation returned no payload")
	// ErrNotAuthenticated is returned by Me for anonymous requests.
	ErrNotAuthenticated = errors.New("request is not authenticated")
)

// AccountErrors are the errors an account mutation reports in its payload.
// The operation reached the API and was rejected.
type AccountErrors []AccountErrorFragment

func (e AccountErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.String()
	}
	return strings.Join(msgs, "; ")
}

// HasCode reports whether one of the errors has the given code.
func (e AccountErrors) HasCode(code AccountErrorCode) bool {
	for _, err := range e {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (f AccountErrorFragment) String() string {
	var b strings.Builder
	b.WriteString(string(f.Code))
	if f.Field != nil {
		fmt.Fprintf(&b, " (%s)", *f.Field)
	}
	if f.Message != nil {
		b.WriteString(": ")
		b.WriteString(*f.Message)
	}
	return b.String()
}

func accountErrors(errs []AccountErrorFragment) error {
	if len(errs) == 0 {
		return nil
	}
	return AccountErrors(errs)
}
