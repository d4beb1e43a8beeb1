// Package document holds the pre-parsed GraphQL operations of the client
// and the schema subset they are validated against.
package document

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

//go:embed schema.graphql
var SchemaSource string

var (
	ErrNoOperation        = errors.New("document has no operation")
	ErrAmbiguousOperation = errors.New("document has several operations; a name is required")
)

var (
	schemaOnce sync.Once
	schema     *ast.Schema
	schemaErr  error
)

// Schema returns the embedded schema, loaded on first use.
func Schema() (*ast.Schema, error) {
	schemaOnce.Do(func() {
		s, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: SchemaSource})
		if err != nil {
			schemaErr = fmt.Errorf("failed to load schema: %w", err)
			return
		}
		schema = s
	})
	return schema, schemaErr
}

// Parse parses an executable document. The document is not validated.
func Parse(src string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: src})
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// MustParse is like Parse but panics on error. It is meant for package
// level operation variables.
func MustParse(src string) *ast.QueryDocument {
	doc, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return doc
}

// Print renders doc as GraphQL source text.
func Print(doc *ast.QueryDocument) string {
	var b strings.Builder
	formatter.NewFormatter(&b).FormatQueryDocument(doc)
	return b.String()
}

// Validate checks doc against the embedded schema.
func Validate(doc *ast.QueryDocument) error {
	s, err := Schema()
	if err != nil {
		return err
	}
	if _, errs := gqlparser.LoadQuery(s, Print(doc)); len(errs) > 0 {
		return errs
	}
	return nil
}

// Operation returns the operation called name. An empty name selects the
// only operation of the document.
func Operation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if len(doc.Operations) == 0 {
		return nil, ErrNoOperation
	}
	if name == "" {
		if len(doc.Operations) > 1 {
			return nil, ErrAmbiguousOperation
		}
		return doc.Operations[0], nil
	}
	if op := doc.Operations.ForName(name); op != nil {
		return op, nil
	}
	return nil, fmt.Errorf("operation %q not found", name)
}

// SelectionPaths lists the leaf fields selected by the named operation, with
// fragment spreads expanded, as sorted dot separated paths. An aliased field
// is written alias:name. Fields of an inline fragment are prefixed with
// "on Type".
func SelectionPaths(doc *ast.QueryDocument, name string) ([]string, error) {
	op, err := Operation(doc, name)
	if err != nil {
		return nil, err
	}
	w := pathWalker{fragments: doc.Fragments, visiting: map[string]bool{}}
	if err := w.walk(op.SelectionSet, ""); err != nil {
		return nil, err
	}
	sort.Strings(w.paths)
	return w.paths, nil
}

type pathWalker struct {
	fragments ast.FragmentDefinitionList
	visiting  map[string]bool
	paths     []string
}

func (w *pathWalker) walk(set ast.SelectionSet, prefix string) error {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			key := s.Name
			if s.Alias != "" && s.Alias != s.Name {
				key = s.Alias + ":" + s.Name
			}
			path := join(prefix, key)
			if len(s.SelectionSet) == 0 {
				w.paths = append(w.paths, path)
				continue
			}
			if err := w.walk(s.SelectionSet, path); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			frag := w.fragments.ForName(s.Name)
			if frag == nil {
				return fmt.Errorf("fragment %q is not defined", s.Name)
			}
			if w.visiting[s.Name] {
				return fmt.Errorf("fragment %q spreads itself", s.Name)
			}
			w.visiting[s.Name] = true
			err := w.walk(frag.SelectionSet, prefix)
			delete(w.visiting, s.Name)
			if err != nil {
				return err
			}
		case *ast.InlineFragment:
			p := prefix
			if s.TypeCondition != "" {
				p = join(prefix, "on "+s.TypeCondition)
			}
			if err := w.walk(s.SelectionSet, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
