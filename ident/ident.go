// Package ident converts Go identifiers into GraphQL field names.
package ident

import (
	"strings"
	"unicode"
)

// Name is an identifier split into words.
type Name []string

// ParseMixedCaps splits a Go MixedCaps identifier into words. Runs of upper
// case letters are kept together as an initialism, so "DatabaseID" gives
// ["Database", "ID"] and "HTTPHeader" gives ["HTTP", "Header"]. Digits stay
// attached to the word before them.
func ParseMixedCaps(name string) Name {
	var words Name
	runes := []rune(name)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			words = append(words, string(runes[start:i]))
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

// ToLowerCamelCase joins the words into a lowerCamelCase GraphQL name.
// Initialisms after the first word are title cased ("databaseId").
func (n Name) ToLowerCamelCase() string {
	var b strings.Builder
	for i, word := range n {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		r := []rune(strings.ToLower(word))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// ToMixedCaps joins the words back into a Go MixedCaps identifier.
func (n Name) ToMixedCaps() string {
	var b strings.Builder
	for _, word := range n {
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
