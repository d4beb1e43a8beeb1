package schema

type Order struct {
	ID                 ID                      `json:"id"`
	Number             string                  `json:"number"`
	Token              string                  `json:"token"`
	Status             OrderStatus             `json:"status"`
	Origin             OrderOrigin             `json:"origin"`
	Original           *ID                     `json:"original"`
	Created            DateTime                `json:"created"`
	UpdatedAt          DateTime                `json:"updatedAt"`
	User               *User                   `json:"user"`
	UserEmail          *string                 `json:"userEmail"`
	Channel            Channel                 `json:"channel"`
	BillingAddress     *Address                `json:"billingAddress"`
	ShippingAddress    *Address                `json:"shippingAddress"`
	ShippingMethodName *string                 `json:"shippingMethodName"`
	ShippingPrice      TaxedMoney              `json:"shippingPrice"`
	Subtotal           TaxedMoney              `json:"subtotal"`
	Total              TaxedMoney              `json:"total"`
	UndiscountedTotal  TaxedMoney              `json:"undiscountedTotal"`
	TotalCharged       Money                   `json:"totalCharged"`
	TotalRefunded      Money                   `json:"totalRefunded"`
	IsPaid             bool                    `json:"isPaid"`
	PaymentStatus      PaymentChargeStatusEnum `json:"paymentStatus"`
	Lines              []OrderLine             `json:"lines"`
	Fulfillments       []Fulfillment           `json:"fulfillments"`
	Payments           []Payment               `json:"payments"`
	Transactions       []TransactionItem       `json:"transactions"`
	Invoices           []Invoice               `json:"invoices"`
	Voucher            *Voucher                `json:"voucher"`
	GiftCards          []GiftCard              `json:"giftCards"`
	CustomerNote       string                  `json:"customerNote"`
	Weight             Weight                  `json:"weight"`
	LanguageCode       string                  `json:"languageCode"`
	Metadata           []MetadataItem          `json:"metadata"`
	ExternalReference  *string                 `json:"externalReference"`
}

func (o Order) NodeID() ID { return o.ID }

type OrderLine struct {
	ID                    ID                     `json:"id"`
	ProductName           string                 `json:"productName"`
	VariantName           string                 `json:"variantName"`
	ProductSku            *string                `json:"productSku"`
	ProductVariantID      *string                `json:"productVariantId"`
	IsShippingRequired    bool                   `json:"isShippingRequired"`
	Quantity              int                    `json:"quantity"`
	QuantityFulfilled     int                    `json:"quantityFulfilled"`
	QuantityToFulfill     int                    `json:"quantityToFulfill"`
	UnitPrice             TaxedMoney             `json:"unitPrice"`
	UndiscountedUnitPrice TaxedMoney             `json:"undiscountedUnitPrice"`
	UnitDiscount          Money                  `json:"unitDiscount"`
	UnitDiscountValue     PositiveDecimal        `json:"unitDiscountValue"`
	UnitDiscountType      *DiscountValueTypeEnum `json:"unitDiscountType"`
	TotalPrice            TaxedMoney             `json:"totalPrice"`
	TaxRate               float64                `json:"taxRate"`
	Variant               *ProductVariant        `json:"variant"`
	Thumbnail             *Image                 `json:"thumbnail"`
	Metadata              []MetadataItem         `json:"metadata"`
}

func (l OrderLine) NodeID() ID { return l.ID }

type Fulfillment struct {
	ID                     ID                `json:"id"`
	FulfillmentOrder       int               `json:"fulfillmentOrder"`
	Status                 FulfillmentStatus `json:"status"`
	TrackingNumber         string            `json:"trackingNumber"`
	Created                DateTime          `json:"created"`
	Lines                  []FulfillmentLine `json:"lines"`
	Warehouse              *Warehouse        `json:"warehouse"`
	TotalRefundedAmount    *Money            `json:"totalRefundedAmount"`
	ShippingRefundedAmount *Money            `json:"shippingRefundedAmount"`
	Metadata               []MetadataItem    `json:"metadata"`
}

func (f Fulfillment) NodeID() ID { return f.ID }

type FulfillmentLine struct {
	ID        ID         `json:"id"`
	Quantity  int        `json:"quantity"`
	OrderLine *OrderLine `json:"orderLine"`
}

type Invoice struct {
	ID          ID             `json:"id"`
	Number      *string        `json:"number"`
	Status      JobStatusEnum  `json:"status"`
	URL         *string        `json:"url"`
	ExternalURL *string        `json:"externalUrl"`
	CreatedAt   DateTime       `json:"createdAt"`
	UpdatedAt   DateTime       `json:"updatedAt"`
	Message     *string        `json:"message"`
	Metadata    []MetadataItem `json:"metadata"`
}

func (i Invoice) NodeID() ID { return i.ID }

type OrderError struct {
	Field       *string          `json:"field"`
	Message     *string          `json:"message"`
	Code        OrderErrorCode   `json:"code"`
	Warehouse   *ID              `json:"warehouse"`
	OrderLines  []ID             `json:"orderLines"`
	Variants    []ID             `json:"variants"`
	AddressType *AddressTypeEnum `json:"addressType"`
}
