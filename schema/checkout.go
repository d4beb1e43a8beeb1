package schema

type Checkout struct {
	ID                 ID                `json:"id"`
	Token              UUID              `json:"token"`
	Email              *string           `json:"email"`
	User               *User             `json:"user"`
	Channel            Channel           `json:"channel"`
	BillingAddress     *Address          `json:"billingAddress"`
	ShippingAddress    *Address          `json:"shippingAddress"`
	Note               string            `json:"note"`
	Discount           *Money            `json:"discount"`
	DiscountName       *string           `json:"discountName"`
	VoucherCode        *string           `json:"voucherCode"`
	Lines              []CheckoutLine    `json:"lines"`
	ShippingMethods    []ShippingMethod  `json:"shippingMethods"`
	ShippingMethod     *ShippingMethod   `json:"shippingMethod"`
	ShippingPrice      TaxedMoney        `json:"shippingPrice"`
	SubtotalPrice      TaxedMoney        `json:"subtotalPrice"`
	TotalPrice         TaxedMoney        `json:"totalPrice"`
	IsShippingRequired bool              `json:"isShippingRequired"`
	Quantity           int               `json:"quantity"`
	LanguageCode       string            `json:"languageCode"`
	Transactions       []TransactionItem `json:"transactions"`
	Created            DateTime          `json:"created"`
	UpdatedAt          DateTime          `json:"updatedAt"`
	Metadata           []MetadataItem    `json:"metadata"`
}

func (c Checkout) NodeID() ID { return c.ID }

type CheckoutLine struct {
	ID                    ID             `json:"id"`
	Variant               ProductVariant `json:"variant"`
	Quantity              int            `json:"quantity"`
	UnitPrice             TaxedMoney     `json:"unitPrice"`
	UndiscountedUnitPrice Money          `json:"undiscountedUnitPrice"`
	TotalPrice            TaxedMoney     `json:"totalPrice"`
	RequiresShipping      bool           `json:"requiresShipping"`
	IsGift                *bool          `json:"isGift"`
	Metadata              []MetadataItem `json:"metadata"`
}

func (l CheckoutLine) NodeID() ID { return l.ID }

type CheckoutError struct {
	Field       *string           `json:"field"`
	Message     *string           `json:"message"`
	Code        CheckoutErrorCode `json:"code"`
	Variants    []ID              `json:"variants"`
	Lines       []ID              `json:"lines"`
	AddressType *AddressTypeEnum  `json:"addressType"`
}
