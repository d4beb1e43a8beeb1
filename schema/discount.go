package schema

type Voucher struct {
	ID                       ID                             `json:"id"`
	Name                     *string                        `json:"name"`
	Code                     *string                        `json:"code"`
	UsageLimit               *int                           `json:"usageLimit"`
	Used                     int                            `json:"used"`
	StartDate                DateTime                       `json:"startDate"`
	EndDate                  *DateTime                      `json:"endDate"`
	ApplyOncePerOrder        bool                           `json:"applyOncePerOrder"`
	ApplyOncePerCustomer     bool                           `json:"applyOncePerCustomer"`
	OnlyForStaff             bool                           `json:"onlyForStaff"`
	SingleUse                bool                           `json:"singleUse"`
	DiscountValueType        DiscountValueTypeEnum          `json:"discountValueType"`
	DiscountValue            *float64                       `json:"discountValue"`
	Currency                 *string                        `json:"currency"`
	MinSpent                 *Money                         `json:"minSpent"`
	MinCheckoutItemsQuantity *int                           `json:"minCheckoutItemsQuantity"`
	Type                     VoucherTypeEnum                `json:"type"`
	Products                 *ProductCountableConnection    `json:"products"`
	Collections              *CollectionCountableConnection `json:"collections"`
	Categories               *CategoryCountableConnection   `json:"categories"`
	Metadata                 []MetadataItem                 `json:"metadata"`
}

func (v Voucher) NodeID() ID { return v.ID }

// Sale is a catalogue promotion.
type Sale struct {
	ID            ID                             `json:"id"`
	Name          string                         `json:"name"`
	Type          SaleType                       `json:"type"`
	StartDate     DateTime                       `json:"startDate"`
	EndDate       *DateTime                      `json:"endDate"`
	Created       DateTime                       `json:"created"`
	UpdatedAt     DateTime                       `json:"updatedAt"`
	DiscountValue *float64                       `json:"discountValue"`
	Currency      *string                        `json:"currency"`
	Products      *ProductCountableConnection    `json:"products"`
	Categories    *CategoryCountableConnection   `json:"categories"`
	Collections   *CollectionCountableConnection `json:"collections"`
	Metadata      []MetadataItem                 `json:"metadata"`
}

func (s Sale) NodeID() ID { return s.ID }
