package graphql

// OptionType identifies what an Option contributes to an operation.
type OptionType string

const (
	optionTypeOperationName      OptionType = "operation_name"
	OptionTypeOperationDirective OptionType = "operation_directive"
)

// Option customises a constructed or executed operation.
type Option interface {
	Type() OptionType
	String() string
}

type operationNameOption struct {
	name string
}

func (o operationNameOption) Type() OptionType { return optionTypeOperationName }

func (o operationNameOption) String() string { return o.name }

// OperationName names the operation. The name is written into constructed
// documents and sent as "operationName" in the request body.
func OperationName(name string) Option {
	return operationNameOption{name: name}
}

type directiveOption string

func (o directiveOption) Type() OptionType { return OptionTypeOperationDirective }

func (o directiveOption) String() string { return string(o) }

// OperationDirective attaches a directive such as "@cached(ttl: 60)" to the
// operation.
func OperationDirective(directive string) Option {
	return directiveOption(directive)
}

// ID is the GraphQL ID scalar. Query construction never expands it.
type ID string

// NewID returns a pointer to an ID, for optional ID variables.
func NewID(v string) *ID {
	id := ID(v)
	return &id
}
