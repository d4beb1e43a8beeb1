// Package types holds the struct tag names and the small interfaces shared
// by query construction and response decoding.
package types

import "reflect"

const (
	// GraphQLTag names the struct tag carrying a field's selection:
	// its name, alias, arguments or an inline fragment.
	GraphQLTag = "graphql"

	// ScalarTag marks a struct field whose value is a scalar even though its
	// Go type is a struct. The field is selected without a sub-selection and
	// decoded from the raw JSON value.
	ScalarTag = "scalar"

	// JSONTag is consulted when collecting variables from a struct.
	JSONTag = "json"

	// TypenameField is the introspection field used to pick the matching
	// inline fragment of a union or interface.
	TypenameField = "__typename"

	// FragmentPrefix starts an inline fragment tag.
	FragmentPrefix = "..."

	// FragmentOnPrefix starts a typed inline fragment tag ("... on Order").
	FragmentOnPrefix = "... on "
)

// GraphQLType is implemented by Go types whose GraphQL type name differs
// from their Go name, typically custom scalars such as UUID or
// PositiveDecimal. The name is used when declaring operation variables.
type GraphQLType interface {
	GetGraphQLType() string
}

// GraphQLTypeInterface is the reflect.Type of GraphQLType.
var GraphQLTypeInterface = reflect.TypeOf((*GraphQLType)(nil)).Elem()
