package schema

type Channel struct {
	ID               ID                `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	IsActive         bool              `json:"isActive"`
	CurrencyCode     string            `json:"currencyCode"`
	DefaultCountry   CountryDisplay    `json:"defaultCountry"`
	Warehouses       []Warehouse       `json:"warehouses"`
	StockSettings    *StockSettings    `json:"stockSettings"`
	OrderSettings    *OrderSettings    `json:"orderSettings"`
	CheckoutSettings *CheckoutSettings `json:"checkoutSettings"`
	Metadata         []MetadataItem    `json:"metadata"`
}

func (c Channel) NodeID() ID { return c.ID }

type StockSettings struct {
	AllocationStrategy string `json:"allocationStrategy"`
}

type OrderSettings struct {
	AutomaticallyConfirmAllNewOrders         bool    `json:"automaticallyConfirmAllNewOrders"`
	AutomaticallyFulfillNonShippableGiftCard bool    `json:"automaticallyFulfillNonShippableGiftCard"`
	ExpireOrdersAfter                        *Minute `json:"expireOrdersAfter"`
	MarkAsPaidStrategy                       string  `json:"markAsPaidStrategy"`
	AllowUnpaidOrders                        bool    `json:"allowUnpaidOrders"`
}

type CheckoutSettings struct {
	UseLegacyErrorFlow bool `json:"useLegacyErrorFlow"`
}

type TaxClass struct {
	ID        ID                    `json:"id"`
	Name      string                `json:"name"`
	Countries []TaxClassCountryRate `json:"countries"`
	Metadata  []MetadataItem        `json:"metadata"`
}

func (t TaxClass) NodeID() ID { return t.ID }

type TaxClassCountryRate struct {
	Country CountryDisplay `json:"country"`
	Rate    float64        `json:"rate"`
}

// TaxConfiguration holds how taxes are computed in one channel.
type TaxConfiguration struct {
	ID                     ID                      `json:"id"`
	Channel                Channel                 `json:"channel"`
	ChargeTaxes            bool                    `json:"chargeTaxes"`
	TaxCalculationStrategy *TaxCalculationStrategy `json:"taxCalculationStrategy"`
	DisplayGrossPrices     bool                    `json:"displayGrossPrices"`
	PricesEnteredWithTax   bool                    `json:"pricesEnteredWithTax"`
}

func (t TaxConfiguration) NodeID() ID { return t.ID }
