// Package jsonutil decodes the "data" member of a GraphQL response into the
// tagged Go structs that were used to build the operation.
package jsonutil

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/llehouerou/go-saleor-client/internal/reflectutil"
	"github.com/llehouerou/go-saleor-client/internal/tagparser"
	"github.com/llehouerou/go-saleor-client/types"
)

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	rawMessageType      = reflect.TypeOf(json.RawMessage{})
	nullLiteral         = []byte("null")
)

// UnmarshalGraphQL parses JSON-encoded response data and stores the result
// in the query structure pointed to by v.
//
// Object keys are matched against the response key of each exported field:
// the alias or field name of its graphql tag, or, without a tag, the Go name
// compared case-insensitively. Embedded structs and inline fragments
// ("... on Type") receive the same object; when the object carries
// __typename, fragments for other types are left untouched. A key that no
// field accepts is an error, so a selection and its decode target cannot
// drift apart silently.
func UnmarshalGraphQL(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("cannot decode into non-pointer %T", v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var root json.RawMessage
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return errors.New("unexpected end of JSON input")
		}
		return err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("invalid token '%v' after top-level value", tok)
	}

	return decodeValue(root, rv.Elem())
}

// decodeValue stores data into v, which must be settable.
func decodeValue(data json.RawMessage, v reflect.Value) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, nullLiteral) {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if isScalarType(v.Type()) {
		return unmarshalScalar(data, v)
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeValue(data, v.Elem())
	case reflect.Struct:
		return decodeObject(data, v)
	case reflect.Slice:
		return decodeList(data, v)
	default:
		return unmarshalScalar(data, v)
	}
}

// isScalarType reports whether values of t are decoded by encoding/json
// rather than walked field by field.
func isScalarType(t reflect.Type) bool {
	if t == rawMessageType {
		return true
	}
	if t.Kind() == reflect.Ptr {
		return false
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

func unmarshalScalar(data json.RawMessage, v reflect.Value) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	target := reflect.New(v.Type())
	if err := dec.Decode(target.Interface()); err != nil {
		return err
	}
	v.Set(target.Elem())
	return nil
}

func decodeList(data json.RawMessage, v reflect.Value) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("cannot decode into %v: %w", v.Type(), err)
	}
	list := reflect.MakeSlice(v.Type(), len(items), len(items))
	for i, item := range items {
		if err := decodeValue(item, list.Index(i)); err != nil {
			return err
		}
	}
	v.Set(list)
	return nil
}

// target is one struct that receives the keys of a JSON object: the
// decoded struct itself, an embedded struct or an inline fragment.
type target struct {
	value    reflect.Value
	typeName string
}

func decodeObject(data json.RawMessage, v reflect.Value) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("cannot decode into %v: %w", v.Type(), err)
	}

	var typename string
	if raw, ok := object[types.TypenameField]; ok {
		_ = json.Unmarshal(raw, &typename)
	}

	targets := collectTargets(v, typename)
	for key, raw := range object {
		found := false
		for _, t := range targets {
			field, scalar := fieldByGraphQLName(t.value, key)
			if !field.IsValid() {
				continue
			}
			found = true
			var err error
			if scalar {
				err = unmarshalScalar(bytes.TrimSpace(raw), field)
			} else {
				err = decodeValue(raw, field)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		if !found {
			return fmt.Errorf(
				"struct field for %q doesn't exist in any of %v places to unmarshal",
				key,
				len(targets),
			)
		}
	}
	return nil
}

// collectTargets walks v breadth-first through embedded structs and inline
// fragments. Fragments whose type condition does not match typename are
// skipped when typename is known.
func collectTargets(v reflect.Value, typename string) []target {
	targets := []target{{value: v}}
	for i := 0; i < len(targets); i++ {
		current := targets[i].value
		for j := 0; j < current.NumField(); j++ {
			field := current.Type().Field(j)
			tag, hasTag := field.Tag.Lookup(types.GraphQLTag)
			parsed := tagparser.ParseGraphQLTag(tag)

			switch {
			case hasTag && parsed.IsFragment:
				if parsed.TypeName != "" && typename != "" && parsed.TypeName != typename {
					continue
				}
			case field.Anonymous && !hasTag:
			default:
				continue
			}

			fv := current.Field(j)
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fv = fv.Elem()
			}
			if fv.Kind() != reflect.Struct {
				continue
			}
			targets = append(targets, target{value: fv, typeName: parsed.TypeName})
		}
	}
	return targets
}

// fieldByGraphQLName returns the exported field of struct v whose response
// key is name, and whether it carries the scalar tag.
func fieldByGraphQLName(v reflect.Value, name string) (reflect.Value, bool) {
	for i := 0; i < v.NumField(); i++ {
		f := v.Type().Field(i)
		if f.PkgPath != "" {
			continue
		}
		if hasGraphQLName(f, name) {
			return v.Field(i), reflectutil.IsTrue(f.Tag.Get(types.ScalarTag))
		}
	}
	return reflect.Value{}, false
}

func hasGraphQLName(f reflect.StructField, name string) bool {
	tag, ok := f.Tag.Lookup(types.GraphQLTag)
	if !ok {
		if f.Anonymous {
			return false
		}
		return strings.EqualFold(f.Name, name)
	}
	parsed := tagparser.ParseGraphQLTag(tag)
	if parsed.IsFragment || parsed.FieldName == "-" {
		return false
	}
	return parsed.ResponseKey() == name
}
