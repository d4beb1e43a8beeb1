// Package tagparser splits the value of a `graphql` struct tag into its
// alias, field name, arguments and fragment parts.
package tagparser

import (
	"strings"

	"github.com/llehouerou/go-saleor-client/types"
)

// ParsedTag is the structured form of a graphql struct tag.
type ParsedTag struct {
	// Alias is the response key when the tag reads "alias: field".
	Alias string
	// FieldName is the schema field being selected. It is "-" for skipped fields.
	FieldName string
	// Arguments is the text between the outermost parentheses.
	Arguments string
	// IsFragment is set for "..." and "... on Type" tags.
	IsFragment bool
	// TypeName is the type condition of a typed inline fragment.
	TypeName string
}

// ResponseKey is the key under which the server returns the field.
func (p ParsedTag) ResponseKey() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.FieldName
}

// ParseGraphQLTag parses tag values such as:
//
//	"email"
//	"tokenCreate(email: $email, password: $password)"
//	"errors: accountErrors"
//	"... on AccountError"
func ParseGraphQLTag(tag string) ParsedTag {
	tag = strings.TrimSpace(tag)
	var parsed ParsedTag
	if tag == "" {
		return parsed
	}
	if tag == "-" {
		parsed.FieldName = "-"
		return parsed
	}
	if strings.HasPrefix(tag, types.FragmentPrefix) {
		parsed.IsFragment = true
		rest := strings.TrimSpace(strings.TrimPrefix(tag, types.FragmentPrefix))
		if strings.HasPrefix(rest, "on ") {
			parsed.TypeName = strings.TrimSpace(rest[len("on "):])
		}
		return parsed
	}

	head := tag
	if open := strings.Index(tag, "("); open != -1 {
		if closing := strings.LastIndex(tag, ")"); closing > open {
			parsed.Arguments = tag[open+1 : closing]
		}
		head = tag[:open]
	}
	if colon := strings.Index(head, ":"); colon != -1 {
		parsed.Alias = strings.TrimSpace(head[:colon])
		parsed.FieldName = strings.TrimSpace(head[colon+1:])
	} else {
		parsed.FieldName = strings.TrimSpace(head)
	}
	return parsed
}
