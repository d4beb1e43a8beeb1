package schema

type ShippingZone struct {
	ID              ID                   `json:"id"`
	Name            string               `json:"name"`
	Default         bool                 `json:"default"`
	Description     *string              `json:"description"`
	Countries       []CountryDisplay     `json:"countries"`
	PriceRange      *MoneyRange          `json:"priceRange"`
	ShippingMethods []ShippingMethodType `json:"shippingMethods"`
	Warehouses      []Warehouse          `json:"warehouses"`
	Channels        []Channel            `json:"channels"`
	Metadata        []MetadataItem       `json:"metadata"`
}

func (z ShippingZone) NodeID() ID { return z.ID }

// ShippingMethodType is a shipping method as configured in a zone.
type ShippingMethodType struct {
	ID                  ID                      `json:"id"`
	Name                string                  `json:"name"`
	Description         *JSONString             `json:"description"`
	Type                *ShippingMethodTypeEnum `json:"type"`
	MinimumOrderWeight  *Weight                 `json:"minimumOrderWeight"`
	MaximumOrderWeight  *Weight                 `json:"maximumOrderWeight"`
	MinimumDeliveryDays *Day                    `json:"minimumDeliveryDays"`
	MaximumDeliveryDays *Day                    `json:"maximumDeliveryDays"`
	TaxClass            *TaxClass               `json:"taxClass"`
	Metadata            []MetadataItem          `json:"metadata"`
}

func (t ShippingMethodType) NodeID() ID { return t.ID }

// ShippingMethod is a shipping method offered to a checkout or order,
// priced for it.
type ShippingMethod struct {
	ID                  ID                      `json:"id"`
	Name                string                  `json:"name"`
	Description         *JSONString             `json:"description"`
	Type                *ShippingMethodTypeEnum `json:"type"`
	Price               Money                   `json:"price"`
	MaximumOrderPrice   *Money                  `json:"maximumOrderPrice"`
	MinimumOrderPrice   *Money                  `json:"minimumOrderPrice"`
	MinimumDeliveryDays *Day                    `json:"minimumDeliveryDays"`
	MaximumDeliveryDays *Day                    `json:"maximumDeliveryDays"`
	Active              bool                    `json:"active"`
	Message             *string                 `json:"message"`
	Metadata            []MetadataItem          `json:"metadata"`
}

func (m ShippingMethod) NodeID() ID { return m.ID }
