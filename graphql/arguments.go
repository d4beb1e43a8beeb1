package graphql

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/llehouerou/go-saleor-client/internal/reflectutil"
	"github.com/llehouerou/go-saleor-client/types"
)

type argument struct {
	name string
	typ  reflect.Type
}

// queryArguments builds the minified variable definitions of an operation,
// sorted by name.
//
// E.g., map[string]any{"email": "a@b.c", "first": (*int)(nil)} -> "$email:String!$first:Int".
func queryArguments(variables any) (string, error) {
	var args []argument
	switch vars := variables.(type) {
	case map[string]any:
		for name, value := range vars {
			if value == nil {
				return "", fmt.Errorf("variable %q is an untyped nil; use a typed nil pointer", name)
			}
			args = append(args, argument{name: name, typ: reflect.TypeOf(value)})
		}
	default:
		var err error
		args, err = structArguments(variables)
		if err != nil {
			return "", err
		}
	}
	sort.Slice(args, func(i, j int) bool { return args[i].name < args[j].name })

	var b strings.Builder
	for _, arg := range args {
		b.WriteString("$")
		b.WriteString(arg.name)
		b.WriteString(":")
		writeArgumentType(&b, arg.typ, true)
	}
	return b.String(), nil
}

// structArguments collects the exported json-tagged fields of a variables struct.
func structArguments(variables any) ([]argument, error) {
	v := reflect.ValueOf(variables)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("variables must be a struct or a map; got %T", variables)
	}
	t := v.Type()

	var args []argument
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get(types.JSONTag), ",")
		if name == "" || name == "-" {
			continue
		}
		args = append(args, argument{name: name, typ: f.Type})
	}
	return args, nil
}

// writeArgumentType writes the GraphQL type of t. value reports whether t
// is a value type, which is required and gets a trailing "!".
func writeArgumentType(w io.StringWriter, t reflect.Type, value bool) {
	if name, ok := reflectutil.GraphQLTypeName(t); ok {
		_, _ = w.WriteString(name)
		if t.Kind() != reflect.Ptr {
			_, _ = w.WriteString("!")
		}
		return
	}

	if t.Kind() == reflect.Ptr {
		writeArgumentType(w, t.Elem(), false)
		return
	}

	switch {
	case reflectutil.IsIntegerKind(t.Kind()):
		_, _ = w.WriteString("Int")
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		_, _ = w.WriteString("[")
		writeArgumentType(w, t.Elem(), true)
		_, _ = w.WriteString("]")
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		_, _ = w.WriteString("Float")
	case t.Kind() == reflect.Bool:
		_, _ = w.WriteString("Boolean")
	case t.Name() == "string":
		_, _ = w.WriteString("String")
	default:
		_, _ = w.WriteString(t.Name())
	}

	if value {
		_, _ = w.WriteString("!")
	}
}
