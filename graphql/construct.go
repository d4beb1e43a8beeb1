package graphql

import (
	"fmt"
	"reflect"
	"strings"
)

type operationType string

const (
	queryOperation    operationType = "query"
	mutationOperation operationType = "mutation"
)

type constructOptionsOutput struct {
	operationName       string
	operationDirectives []string
}

func (o constructOptionsOutput) directivesString() string {
	if len(o.operationDirectives) == 0 {
		return ""
	}
	return " " + strings.Join(o.operationDirectives, " ") + " "
}

func constructOptions(options []Option) (constructOptionsOutput, error) {
	var out constructOptionsOutput
	for _, option := range options {
		switch option.Type() {
		case optionTypeOperationName:
			out.operationName = option.String()
		case OptionTypeOperationDirective:
			out.operationDirectives = append(out.operationDirectives, option.String())
		default:
			return out, fmt.Errorf("invalid query option type: %s", option.Type())
		}
	}
	return out, nil
}

// operationNameOf returns the name set by an OperationName option, if any.
func operationNameOf(options []Option) string {
	var name string
	for _, option := range options {
		if option.Type() == optionTypeOperationName {
			name = option.String()
		}
	}
	return name
}

// hasVariables reports false for nil and for empty maps.
func hasVariables(variables any) bool {
	if variables == nil {
		return false
	}
	rv := reflect.ValueOf(variables)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr:
		return !rv.IsNil()
	}
	return true
}

func constructOperation(op operationType, v any, variables any, options ...Option) (string, error) {
	selection, err := query(v)
	if err != nil {
		return "", err
	}
	opts, err := constructOptions(options)
	if err != nil {
		return "", err
	}

	if hasVariables(variables) {
		args, err := queryArguments(variables)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s(%s)%s%s", op, opts.operationName, args, opts.directivesString(), selection), nil
	}

	if opts.operationName == "" && len(opts.operationDirectives) == 0 {
		if op == queryOperation {
			return selection, nil
		}
		return string(op) + selection, nil
	}
	return fmt.Sprintf("%s %s%s%s", op, opts.operationName, opts.directivesString(), selection), nil
}

// ConstructQuery builds a query document from the selection struct v and
// the variables, which may be a map[string]any or a struct with json tags.
//
// E.g., struct{Me struct{Email string}} -> "{me{email}}".
func ConstructQuery(v any, variables any, options ...Option) (string, error) {
	return constructOperation(queryOperation, v, variables, options...)
}

// ConstructMutation is ConstructQuery for mutations.
func ConstructMutation(v any, variables any, options ...Option) (string, error) {
	return constructOperation(mutationOperation, v, variables, options...)
}
