package schema

// Money is an amount in a currency.
type Money struct {
	Currency string          `json:"currency"`
	Amount   PositiveDecimal `json:"amount"`
}

// TaxedMoney is a price with and without taxes.
type TaxedMoney struct {
	Currency string `json:"currency"`
	Gross    Money  `json:"gross"`
	Net      Money  `json:"net"`
	Tax      Money  `json:"tax"`
}

type MoneyRange struct {
	Start *Money `json:"start"`
	Stop  *Money `json:"stop"`
}

type TaxedMoneyRange struct {
	Start *TaxedMoney `json:"start"`
	Stop  *TaxedMoney `json:"stop"`
}

type Image struct {
	URL string  `json:"url"`
	Alt *string `json:"alt"`
}

type Weight struct {
	Unit  WeightUnitsEnum `json:"unit"`
	Value float64         `json:"value"`
}

// MetadataItem is one public or private metadata entry.
type MetadataItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CountryDisplay struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

// PageInfo describes the window returned by a cursor connection.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Connection is a Relay cursor connection over nodes of type T.
type Connection[T any] struct {
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
	TotalCount *int      `json:"totalCount"`
}

type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// Nodes returns the nodes of all edges in order.
func (c Connection[T]) Nodes() []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}

// NextCursor returns the cursor to pass as "after" for the next page, and
// false when this is the last page.
func (c Connection[T]) NextCursor() (string, bool) {
	if !c.PageInfo.HasNextPage || c.PageInfo.EndCursor == nil {
		return "", false
	}
	return *c.PageInfo.EndCursor, true
}

type (
	ProductCountableConnection        = Connection[Product]
	ProductVariantCountableConnection = Connection[ProductVariant]
	CategoryCountableConnection       = Connection[Category]
	CollectionCountableConnection     = Connection[Collection]
	OrderCountableConnection          = Connection[Order]
	UserCountableConnection           = Connection[User]
	CheckoutCountableConnection       = Connection[Checkout]
	GiftCardCountableConnection       = Connection[GiftCard]
	PageCountableConnection           = Connection[Page]
	WarehouseCountableConnection      = Connection[Warehouse]
	VoucherCountableConnection        = Connection[Voucher]
	SaleCountableConnection           = Connection[Sale]
)

// Node is implemented by every object type carrying a global ID.
type Node interface {
	NodeID() ID
}
