package tagparser

import "testing"

func TestParseGraphQLTag(t *testing.T) {
	tests := []struct {
		tag  string
		want ParsedTag
	}{
		{tag: "", want: ParsedTag{}},
		{tag: "-", want: ParsedTag{FieldName: "-"}},
		{tag: "email", want: ParsedTag{FieldName: "email"}},
		{tag: "  email  ", want: ParsedTag{FieldName: "email"}},
		{
			tag:  "tokenCreate(email: $email, password: $password)",
			want: ParsedTag{FieldName: "tokenCreate", Arguments: "email: $email, password: $password"},
		},
		{
			tag:  "errors: accountErrors",
			want: ParsedTag{Alias: "errors", FieldName: "accountErrors"},
		},
		{
			tag:  "first: products(first: 1, filter: {search: \"a:b\"})",
			want: ParsedTag{Alias: "first", FieldName: "products", Arguments: "first: 1, filter: {search: \"a:b\"}"},
		},
		{
			tag:  "thumbnail(size: (1))",
			want: ParsedTag{FieldName: "thumbnail", Arguments: "size: (1)"},
		},
		{tag: "...", want: ParsedTag{IsFragment: true}},
		{tag: "... on AccountError", want: ParsedTag{IsFragment: true, TypeName: "AccountError"}},
		{tag: "...   on   CheckoutError ", want: ParsedTag{IsFragment: true, TypeName: "CheckoutError"}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseGraphQLTag(tt.tag); got != tt.want {
				t.Errorf("ParseGraphQLTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParsedTag_ResponseKey(t *testing.T) {
	if got := ParseGraphQLTag("errors: accountErrors").ResponseKey(); got != "errors" {
		t.Errorf("aliased key = %q, want errors", got)
	}
	if got := ParseGraphQLTag("user(id: $id)").ResponseKey(); got != "user" {
		t.Errorf("plain key = %q, want user", got)
	}
}
