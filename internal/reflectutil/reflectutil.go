// Package reflectutil collects the nil-tolerant reflection helpers used by
// query construction and response decoding.
package reflectutil

import (
	"reflect"
	"strconv"

	"github.com/llehouerou/go-saleor-client/types"
)

// IndexSafe returns v.Index(i), or an invalid value when v is invalid or i
// is out of range.
func IndexSafe(v reflect.Value, i int) reflect.Value {
	if v.IsValid() && i >= 0 && i < v.Len() {
		return v.Index(i)
	}
	return reflect.Value{}
}

// ElemSafe returns v.Elem() for pointers and interfaces, or an invalid value.
func ElemSafe(v reflect.Value) reflect.Value {
	if v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		return v.Elem()
	}
	return reflect.Value{}
}

// FieldSafe returns the i-th field of a struct value, or an invalid value.
func FieldSafe(v reflect.Value, i int) reflect.Value {
	if v.IsValid() {
		return v.Field(i)
	}
	return reflect.Value{}
}

// Indirect follows pointers and interfaces down to the concrete value.
// A nil pointer or interface on the way yields an invalid value.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsTrue reports whether s parses as a true boolean.
func IsTrue(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

// IsIntegerKind reports whether k is one of the signed or unsigned integer kinds.
func IsIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// GraphQLTypeName returns the name reported by GetGraphQLType for t, and
// whether t (or a pointer to t) implements types.GraphQLType at all.
func GraphQLTypeName(t reflect.Type) (string, bool) {
	var v reflect.Value
	switch {
	case t.Implements(types.GraphQLTypeInterface):
		if t.Kind() == reflect.Ptr {
			v = reflect.New(t.Elem())
		} else {
			v = reflect.Zero(t)
		}
	case t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(types.GraphQLTypeInterface):
		v = reflect.New(t)
	default:
		return "", false
	}
	gt, ok := v.Interface().(types.GraphQLType)
	if !ok {
		return "", false
	}
	return gt.GetGraphQLType(), true
}
