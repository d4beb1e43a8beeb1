package graphql

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

type cachedDirective struct {
	ttl int
}

func (cd cachedDirective) Type() OptionType {
	return OptionTypeOperationDirective
}

func (cd cachedDirective) String() string {
	if cd.ttl <= 0 {
		return "@cached"
	}
	return fmt.Sprintf("@cached(ttl: %d)", cd.ttl)
}

type DateTime struct{ time.Time }

type UUID string

func (UUID) GetGraphQLType() string { return "UUID" }

type PositiveDecimal struct{ value string }

func (*PositiveDecimal) GetGraphQLType() string { return "PositiveDecimal" }

type AccountErrorCode string

type AddressInput struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type Category struct {
	Name     string
	Parent   *Category
	Children []Category
}

func TestConstructQuery(t *testing.T) {
	tests := []struct {
		name        string
		options     []Option
		inV         any
		inVariables any
		want        string
	}{
		{
			name: "plain selection",
			inV: struct {
				Me struct {
					ID         ID
					Email      string
					IsStaff    bool
					DateJoined DateTime
				}
				Shop struct {
					Name string
				}
			}{},
			want: `{me{id,email,isStaff,dateJoined},shop{name}}`,
		},
		{
			name:    "named with directive",
			options: []Option{OperationName("ProductDetails"), cachedDirective{}},
			inV: struct {
				Product struct {
					ID        ID
					Name      string
					Thumbnail struct {
						URL string
					} `graphql:"thumbnail(size: 256)"`
					Variants []struct {
						SKU             string `graphql:"sku"`
						QuantityOrdered int
					}
				} `graphql:"product(slug: \"juice\", channel: \"default-channel\")"`
			}{},
			want: `query ProductDetails @cached {product(slug: "juice", channel: "default-channel"){id,name,thumbnail(size: 256){url},variants{sku,quantityOrdered}}}`,
		},
		{
			name: "variables",
			inV: struct {
				Products struct {
					TotalCount int
					Edges      []struct {
						Node struct {
							Name string
						}
					}
				} `graphql:"products(first: $first, channel: $channel)"`
			}{},
			inVariables: map[string]any{
				"first":   20,
				"channel": (*string)(nil),
			},
			want: `query ($channel:String$first:Int!){products(first: $first, channel: $channel){totalCount,edges{node{name}}}}`,
		},
		{
			name: "inline fragments and typename",
			inV: struct {
				Node struct {
					Typename string `graphql:"__typename"`
					Product  struct {
						Name string
					} `graphql:"... on Product"`
					Order struct {
						Number string
					} `graphql:"... on Order"`
				} `graphql:"node(id: $id)"`
			}{},
			inVariables: map[string]any{"id": ID("UHJvZHVjdDox")},
			want:        `query ($id:ID!){node(id: $id){__typename,... on Product{name},... on Order{number}}}`,
		},
		{
			name: "embedded struct and scalar tag",
			inV: struct {
				Me struct {
					fragmentUser
					Metadata struct {
						Key   string
						Value string
					} `graphql:"metadata" scalar:"true"`
					Note map[string]any `graphql:"note"`
				}
			}{},
			want: `{me{id,email,metadata,note}}`,
		},
		{
			name: "interface field uses the concrete value",
			inV: struct {
				Shop any
			}{
				Shop: struct {
					Name string
				}{},
			},
			want: `{shop{name}}`,
		},
		{
			name: "nil interface field",
			inV: struct {
				Shop any
				Me   struct{ Email string }
			}{},
			want: `{shop,me{email}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConstructQuery(tc.inV, tc.inVariables, tc.options...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("\ngot:  %q\nwant: %q\n", got, tc.want)
			}
		})
	}
}

type fragmentUser struct {
	ID    ID
	Email string
}

func TestConstructMutation(t *testing.T) {
	tests := []struct {
		name        string
		options     []Option
		inV         any
		inVariables any
		want        string
	}{
		{
			name: "token create",
			inV: struct {
				TokenCreate struct {
					Token        string
					RefreshToken string
					CSRFToken    string `graphql:"csrfToken"`
				} `graphql:"tokenCreate(email: $email, password: $password)"`
			}{},
			inVariables: struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}{},
			options: []Option{OperationName("TokenCreate")},
			want:    `mutation TokenCreate($email:String!$password:String!){tokenCreate(email: $email, password: $password){token,refreshToken,csrfToken}}`,
		},
		{
			name: "no variables",
			inV: struct {
				TokensDeactivateAll struct {
					Errors []struct {
						Code AccountErrorCode
					}
				}
			}{},
			want: `mutation{tokensDeactivateAll{errors{code}}}`,
		},
		{
			name: "custom scalars and inputs",
			inV: struct {
				AccountAddressCreate struct {
					Address struct {
						ID ID
					}
				} `graphql:"accountAddressCreate(input: $input, type: $type)"`
			}{},
			inVariables: &struct {
				Input   AddressInput      `json:"input"`
				Type    *string           `json:"type,omitempty"`
				Token   UUID              `json:"token"`
				Amounts []PositiveDecimal `json:"amounts"`
				Ignored string            `json:"-"`
				private string
			}{},
			want: `mutation ($amounts:[PositiveDecimal!]!$input:AddressInput!$token:UUID!$type:String){accountAddressCreate(input: $input, type: $type){address{id}}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConstructMutation(tc.inV, tc.inVariables, tc.options...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("\ngot:  %q\nwant: %q\n", got, tc.want)
			}
		})
	}
}

func TestConstructQuery_recursiveType(t *testing.T) {
	_, err := ConstructQuery(struct{ Category Category }{}, nil)
	if err == nil {
		t.Fatal("got nil error for a self-referencing selection")
	}
	if !strings.Contains(err.Error(), "recursive selection on type") {
		t.Errorf("got %v", err)
	}
}

func TestConstructQuery_errors(t *testing.T) {
	if _, err := ConstructQuery(nil, nil); err == nil {
		t.Error("nil selection: got nil error")
	}
	if _, err := ConstructQuery(struct{ Me struct{ ID ID } }{}, 42); err == nil {
		t.Error("scalar variables: got nil error")
	}
	if _, err := ConstructQuery(struct{ Me struct{ ID ID } }{}, map[string]any{"id": nil}); err == nil {
		t.Error("untyped nil variable: got nil error")
	}
	_, err := ConstructQuery(struct{ Me struct{ ID ID } }{}, nil, badOption{})
	if err == nil || err.Error() != "invalid query option type: bad" {
		t.Errorf("bad option: got %v", err)
	}
}

type badOption struct{}

func (badOption) Type() OptionType { return "bad" }
func (badOption) String() string   { return "" }

func TestQueryArguments(t *testing.T) {
	tests := []struct {
		in   map[string]any
		want string
	}{
		{
			in:   map[string]any{"a": 123, "b": true},
			want: "$a:Int!$b:Boolean!",
		},
		{
			in:   map[string]any{"price": 9.99, "ids": []ID{"a"}, "slugs": &[]string{}},
			want: "$ids:[ID!]!$price:Float!$slugs:[String!]",
		},
		{
			in:   map[string]any{"code": AccountErrorCode("INVALID"), "codes": []*AccountErrorCode{}},
			want: "$code:AccountErrorCode!$codes:[AccountErrorCode]!",
		},
		{
			in:   map[string]any{"token": UUID(""), "maybe": (*UUID)(nil), "amount": &PositiveDecimal{}},
			want: "$amount:PositiveDecimal$maybe:UUID$token:UUID!",
		},
		{
			in:   map[string]any{"amount": PositiveDecimal{}},
			want: "$amount:PositiveDecimal!",
		},
	}
	for _, tc := range tests {
		got, err := queryArguments(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("queryArguments(%v):\ngot:  %q\nwant: %q", tc.in, got, tc.want)
		}
	}
}

func TestHasVariables(t *testing.T) {
	var nilStruct *struct{}
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{map[string]any{}, false},
		{map[string]any{"a": 1}, true},
		{struct{}{}, true},
		{nilStruct, false},
	}
	for _, tc := range tests {
		if got := hasVariables(tc.in); got != tc.want {
			t.Errorf("hasVariables(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
