package graphql

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/llehouerou/go-saleor-client/ident"
	"github.com/llehouerou/go-saleor-client/internal/reflectutil"
	"github.com/llehouerou/go-saleor-client/types"
)

var (
	jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// queryWriter builds a minified selection set. visiting holds the struct
// types on the current path so that a self-referencing type is reported
// instead of recursing forever.
type queryWriter struct {
	b        strings.Builder
	visiting map[reflect.Type]bool
}

// query returns the selection set described by v.
//
// E.g., struct{Foo Int, BarBaz *bool} -> "{foo,barBaz}".
func query(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("cannot build a selection from nil")
	}
	w := &queryWriter{visiting: make(map[reflect.Type]bool)}
	if err := w.write(reflect.TypeOf(v), reflect.ValueOf(v), false); err != nil {
		return "", fmt.Errorf("failed to write query: %w", err)
	}
	return w.b.String(), nil
}

// isLeaf reports whether t is selected without a sub-selection.
func isLeaf(t reflect.Type) bool {
	if t.Kind() == reflect.Map || t.AssignableTo(idType) {
		return true
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshaler) || pt.Implements(textUnmarshaler)
}

var idType = reflect.TypeOf(ID(""))

func (w *queryWriter) write(t reflect.Type, v reflect.Value, inline bool) error {
	switch t.Kind() {
	case reflect.Ptr:
		return w.write(t.Elem(), reflectutil.ElemSafe(v), false)
	case reflect.Interface:
		elem := reflectutil.Indirect(v)
		if !elem.IsValid() {
			return nil
		}
		return w.write(elem.Type(), elem, inline)
	case reflect.Slice, reflect.Array:
		return w.write(t.Elem(), reflectutil.IndexSafe(v, 0), false)
	case reflect.Struct:
		if isLeaf(t) {
			return nil
		}
		if w.visiting[t] {
			return fmt.Errorf("recursive selection on type %v", t)
		}
		w.visiting[t] = true
		defer delete(w.visiting, t)
		return w.writeStruct(t, v, inline)
	}
	return nil
}

// writeStruct writes the fields of t. When inline is true the fields join
// the parent's selection set rather than opening a new one.
func (w *queryWriter) writeStruct(t reflect.Type, v reflect.Value, inline bool) error {
	if !inline {
		w.b.WriteString("{")
	}
	written := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" && !f.Anonymous {
			continue
		}
		tag, hasTag := f.Tag.Lookup(types.GraphQLTag)
		if tag == "-" {
			continue
		}

		if written > 0 {
			w.b.WriteString(",")
		}
		written++

		embedded := f.Anonymous && !hasTag
		if !embedded {
			if hasTag {
				w.b.WriteString(tag)
			} else {
				w.b.WriteString(ident.ParseMixedCaps(f.Name).ToLowerCamelCase())
			}
		}
		if reflectutil.IsTrue(f.Tag.Get(types.ScalarTag)) {
			continue
		}
		if err := w.write(f.Type, reflectutil.FieldSafe(v, i), embedded); err != nil {
			return fmt.Errorf("failed to write query for struct field `%v`: %w", f.Name, err)
		}
	}
	if !inline {
		w.b.WriteString("}")
	}
	return nil
}
