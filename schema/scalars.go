// Package schema holds Go types for the Saleor GraphQL schema: custom
// scalars, enums, object types, inputs and connections.
//
// Object types describe what the API can return and are used as decode
// targets (encoding/json or graphql.UnmarshalGraphQL with a matching
// selection). Many of them are self-referencing, so they are not meant to
// be handed to query construction directly; operations declare their own
// selection structs and reuse the scalar, enum and input types from here.
//
// Nullable fields are pointers. Optional input fields are pointers tagged
// omitempty.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/llehouerou/go-saleor-client/graphql"
)

// ID is the GraphQL ID scalar. Saleor uses Relay global IDs, see package
// globalid. It is the transport's ID type, so ID variables are declared as
// ID! rather than String!.
type ID = graphql.ID

// UUID is a UUID sent and received in its canonical string form.
type UUID struct {
	uuid.UUID
}

func (UUID) GetGraphQLType() string { return "UUID" }

// ParseUUID parses s into a UUID.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID{u}, nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.UUID.String())
}

func (u *UUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("UUID: %w", err)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("UUID: %w", err)
	}
	u.UUID = parsed
	return nil
}

// DateTime is an ISO 8601 timestamp with time zone.
type DateTime struct {
	time.Time
}

func (DateTime) GetGraphQLType() string { return "DateTime" }

// Date is a calendar date in YYYY-MM-DD form.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (Date) GetGraphQLType() string { return "Date" }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Date: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("Date: %w", err)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// JSONString is a JSON document carried as a string, for example the
// payload of a webhook delivery or the private data of a plugin.
type JSONString string

func (JSONString) GetGraphQLType() string { return "JSONString" }

// Decode unmarshals the carried document into v.
func (s JSONString) Decode(v any) error {
	return json.Unmarshal([]byte(s), v)
}

// Metadata is the flat key/value form of metadata used by filters and
// webhook payloads.
type Metadata map[string]string

func (Metadata) GetGraphQLType() string { return "Metadata" }

// GenericScalar is an untyped JSON value, used by token payloads.
type GenericScalar = json.RawMessage

// Decimal is an arbitrary-precision decimal. The API returns decimals as
// JSON numbers and accepts either numbers or strings.
type Decimal struct {
	decimal.Decimal
}

func (Decimal) GetGraphQLType() string { return "Decimal" }

// NewDecimal parses s as a decimal.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// PositiveDecimal is a non-negative decimal. Decoding a negative value is
// an error.
type PositiveDecimal struct {
	decimal.Decimal
}

func (PositiveDecimal) GetGraphQLType() string { return "PositiveDecimal" }

func (d *PositiveDecimal) UnmarshalJSON(data []byte) error {
	if err := d.Decimal.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("PositiveDecimal: %w", err)
	}
	if d.Decimal.IsNegative() {
		return fmt.Errorf("PositiveDecimal: negative value %s", d.Decimal)
	}
	return nil
}

// WeightScalar is a weight amount in the shop's default unit.
type WeightScalar struct {
	decimal.Decimal
}

func (WeightScalar) GetGraphQLType() string { return "WeightScalar" }

// Upload is the multipart file upload scalar. It is only declared here:
// uploads are never sent as JSON variables.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
}

func (Upload) GetGraphQLType() string { return "Upload" }

// Day and Minute are the integer scalars used by shipping delivery time
// ranges and reservation settings.
type (
	Day    = int
	Minute = int
)

// UnknownEnumError is returned when a response carries an enum value the
// client does not know.
type UnknownEnumError struct {
	Enum  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("%s: unknown value %q", e.Enum, e.Value)
}

type enum interface {
	~string
	IsValid() bool
}

func unmarshalEnum[E enum](data []byte, e *E, name string) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	v := E(s)
	if !v.IsValid() {
		return &UnknownEnumError{Enum: name, Value: s}
	}
	*e = v
	return nil
}

// ParseEnum converts s, compared case-insensitively, into a member of E.
func ParseEnum[E enum](s string) (E, error) {
	v := E(strings.ToUpper(s))
	if !v.IsValid() {
		return v, &UnknownEnumError{Enum: fmt.Sprintf("%T", v), Value: s}
	}
	return v, nil
}
