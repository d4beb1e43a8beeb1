package schema

// AccountInput updates the fields of the logged-in customer.
type AccountInput struct {
	FirstName              *string         `json:"firstName,omitempty"`
	LastName               *string         `json:"lastName,omitempty"`
	LanguageCode           *string         `json:"languageCode,omitempty"`
	DefaultBillingAddress  *AddressInput   `json:"defaultBillingAddress,omitempty"`
	DefaultShippingAddress *AddressInput   `json:"defaultShippingAddress,omitempty"`
	Metadata               []MetadataInput `json:"metadata,omitempty"`
}

type AccountRegisterInput struct {
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	FirstName    *string         `json:"firstName,omitempty"`
	LastName     *string         `json:"lastName,omitempty"`
	LanguageCode *string         `json:"languageCode,omitempty"`
	RedirectURL  *string         `json:"redirectUrl,omitempty"`
	Channel      *string         `json:"channel,omitempty"`
	Metadata     []MetadataInput `json:"metadata,omitempty"`
}

type AddressInput struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	CompanyName    *string `json:"companyName,omitempty"`
	StreetAddress1 *string `json:"streetAddress1,omitempty"`
	StreetAddress2 *string `json:"streetAddress2,omitempty"`
	City           *string `json:"city,omitempty"`
	CityArea       *string `json:"cityArea,omitempty"`
	PostalCode     *string `json:"postalCode,omitempty"`
	Country        *string `json:"country,omitempty"`
	CountryArea    *string `json:"countryArea,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	SkipValidation *bool   `json:"skipValidation,omitempty"`
}

type CheckoutCreateInput struct {
	Channel         *string             `json:"channel,omitempty"`
	Lines           []CheckoutLineInput `json:"lines"`
	Email           *string             `json:"email,omitempty"`
	ShippingAddress *AddressInput       `json:"shippingAddress,omitempty"`
	BillingAddress  *AddressInput       `json:"billingAddress,omitempty"`
	LanguageCode    *string             `json:"languageCode,omitempty"`
}

type CheckoutLineInput struct {
	Quantity     int              `json:"quantity"`
	VariantID    ID               `json:"variantId"`
	Price        *PositiveDecimal `json:"price,omitempty"`
	ForceNewLine *bool            `json:"forceNewLine,omitempty"`
	Metadata     []MetadataInput  `json:"metadata,omitempty"`
}

type MetadataInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type MetadataFilter struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
}

type DateRangeInput struct {
	Gte *Date `json:"gte,omitempty"`
	Lte *Date `json:"lte,omitempty"`
}

type DateTimeRangeInput struct {
	Gte *DateTime `json:"gte,omitempty"`
	Lte *DateTime `json:"lte,omitempty"`
}

type PriceRangeInput struct {
	Gte *float64 `json:"gte,omitempty"`
	Lte *float64 `json:"lte,omitempty"`
}

type IntRangeInput struct {
	Gte *int `json:"gte,omitempty"`
	Lte *int `json:"lte,omitempty"`
}

type ProductFilterInput struct {
	IsPublished           *bool               `json:"isPublished,omitempty"`
	Collections           []ID                `json:"collections,omitempty"`
	Categories            []ID                `json:"categories,omitempty"`
	HasCategory           *bool               `json:"hasCategory,omitempty"`
	StockAvailability     *StockAvailability  `json:"stockAvailability,omitempty"`
	Price                 *PriceRangeInput    `json:"price,omitempty"`
	MinimalPrice          *PriceRangeInput    `json:"minimalPrice,omitempty"`
	Updated               *DateTimeRangeInput `json:"updatedAt,omitempty"`
	ProductTypes          []ID                `json:"productTypes,omitempty"`
	GiftCard              *bool               `json:"giftCard,omitempty"`
	IDs                   []ID                `json:"ids,omitempty"`
	HasPreorderedVariants *bool               `json:"hasPreorderedVariants,omitempty"`
	Search                *string             `json:"search,omitempty"`
	Metadata              []MetadataFilter    `json:"metadata,omitempty"`
	Slugs                 []string            `json:"slugs,omitempty"`
}

type OrderFilterInput struct {
	PaymentStatus     []PaymentChargeStatusEnum `json:"paymentStatus,omitempty"`
	Status            []OrderStatus             `json:"status,omitempty"`
	Customer          *string                   `json:"customer,omitempty"`
	Created           *DateRangeInput           `json:"created,omitempty"`
	UpdatedAt         *DateTimeRangeInput       `json:"updatedAt,omitempty"`
	Search            *string                   `json:"search,omitempty"`
	Channels          []ID                      `json:"channels,omitempty"`
	Numbers           []string                  `json:"numbers,omitempty"`
	IDs               []ID                      `json:"ids,omitempty"`
	IsClickAndCollect *bool                     `json:"isClickAndCollect,omitempty"`
	Metadata          []MetadataFilter          `json:"metadata,omitempty"`
}

type ProductOrder struct {
	Direction OrderDirection     `json:"direction"`
	Channel   *string            `json:"channel,omitempty"`
	Field     *ProductOrderField `json:"field,omitempty"`
}

type OrderSortingInput struct {
	Direction OrderDirection `json:"direction"`
	Field     OrderSortField `json:"field"`
}

type WebhookCreateInput struct {
	Name          *string                     `json:"name,omitempty"`
	TargetURL     *string                     `json:"targetUrl,omitempty"`
	AsyncEvents   []WebhookEventTypeAsyncEnum `json:"asyncEvents,omitempty"`
	SyncEvents    []WebhookEventTypeSyncEnum  `json:"syncEvents,omitempty"`
	App           *ID                         `json:"app,omitempty"`
	IsActive      *bool                       `json:"isActive,omitempty"`
	SecretKey     *string                     `json:"secretKey,omitempty"`
	Query         *string                     `json:"query,omitempty"`
	CustomHeaders *JSONString                 `json:"customHeaders,omitempty"`
}
