// Package globalid encodes and decodes the Relay global IDs used by every
// node of the API: base64("Type:pk").
package globalid

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Type names match the GraphQL object types implementing Node.
const (
	TypeUser           = "User"
	TypeAddress        = "Address"
	TypeGroup          = "Group"
	TypeApp            = "App"
	TypeProduct        = "Product"
	TypeProductVariant = "ProductVariant"
	TypeProductType    = "ProductType"
	TypeCategory       = "Category"
	TypeCollection     = "Collection"
	TypeAttribute      = "Attribute"
	TypeWarehouse      = "Warehouse"
	TypeChannel        = "Channel"
	TypeCheckout       = "Checkout"
	TypeCheckoutLine   = "CheckoutLine"
	TypeOrder          = "Order"
	TypeOrderLine      = "OrderLine"
	TypeFulfillment    = "Fulfillment"
	TypePayment        = "Payment"
	TypeTransaction    = "TransactionItem"
	TypeGiftCard       = "GiftCard"
	TypeVoucher        = "Voucher"
	TypeSale           = "Sale"
	TypeShippingZone   = "ShippingZone"
	TypeShippingMethod = "ShippingMethodType"
	TypePage           = "Page"
	TypeMenu           = "Menu"
	TypeMenuItem       = "MenuItem"
	TypeWebhook        = "Webhook"
	TypeTaxClass       = "TaxClass"
)

var (
	// ErrMalformed is returned for values that are not base64("Type:pk").
	ErrMalformed = errors.New("malformed global id")
	// ErrTypeMismatch is returned when an ID names another type than expected.
	ErrTypeMismatch = errors.New("global id type mismatch")
)

// Encode builds the global ID of the node typ with primary key pk.
func Encode(typ, pk string) string {
	return base64.StdEncoding.EncodeToString([]byte(typ + ":" + pk))
}

// EncodeInt is Encode for integer primary keys.
func EncodeInt(typ string, pk int) string {
	return Encode(typ, strconv.Itoa(pk))
}

// Decode splits a global ID into its type and primary key.
func Decode(id string) (typ, pk string, err error) {
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	typ, pk, ok := strings.Cut(string(raw), ":")
	if !ok || typ == "" || pk == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformed, id)
	}
	return typ, pk, nil
}

// DecodeExpected returns the primary key of id after checking it names a
// node of type expected.
func DecodeExpected(id, expected string) (string, error) {
	typ, pk, err := Decode(id)
	if err != nil {
		return "", err
	}
	if typ != expected {
		return "", fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, expected, typ)
	}
	return pk, nil
}

// DecodeInt is DecodeExpected for types with integer primary keys.
func DecodeInt(id, expected string) (int, error) {
	pk, err := DecodeExpected(id, expected)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(pk)
	if err != nil {
		return 0, fmt.Errorf("%w: non-integer key %q", ErrMalformed, pk)
	}
	return n, nil
}

// DecodeUUID is DecodeExpected for types keyed by UUID, such as Order and
// Checkout.
func DecodeUUID(id, expected string) (uuid.UUID, error) {
	pk, err := DecodeExpected(id, expected)
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.Parse(pk)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: non-uuid key %q", ErrMalformed, pk)
	}
	return u, nil
}
