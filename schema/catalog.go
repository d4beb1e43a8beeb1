package schema

type Product struct {
	ID                     ID                  `json:"id"`
	Name                   string              `json:"name"`
	Slug                   string              `json:"slug"`
	Description            *JSONString         `json:"description"`
	SeoTitle               *string             `json:"seoTitle"`
	SeoDescription         *string             `json:"seoDescription"`
	ProductType            ProductType         `json:"productType"`
	Category               *Category           `json:"category"`
	Collections            []Collection        `json:"collections"`
	Thumbnail              *Image              `json:"thumbnail"`
	Media                  []ProductMedia      `json:"media"`
	Variants               []ProductVariant    `json:"variants"`
	Attributes             []SelectedAttribute `json:"attributes"`
	Pricing                *ProductPricingInfo `json:"pricing"`
	IsAvailable            *bool               `json:"isAvailable"`
	IsAvailableForPurchase *bool               `json:"isAvailableForPurchase"`
	AvailableForPurchaseAt *DateTime           `json:"availableForPurchaseAt"`
	Channel                *string             `json:"channel"`
	Rating                 *float64            `json:"rating"`
	Weight                 *Weight             `json:"weight"`
	TaxClass               *TaxClass           `json:"taxClass"`
	Created                DateTime            `json:"created"`
	UpdatedAt              DateTime            `json:"updatedAt"`
	Metadata               []MetadataItem      `json:"metadata"`
	PrivateMetadata        []MetadataItem      `json:"privateMetadata"`
	ExternalReference      *string             `json:"externalReference"`
}

func (p Product) NodeID() ID { return p.ID }

type ProductPricingInfo struct {
	OnSale                 *bool            `json:"onSale"`
	Discount               *TaxedMoney      `json:"discount"`
	PriceRange             *TaxedMoneyRange `json:"priceRange"`
	PriceRangeUndiscounted *TaxedMoneyRange `json:"priceRangeUndiscounted"`
}

type ProductMedia struct {
	ID        ID     `json:"id"`
	SortOrder *int   `json:"sortOrder"`
	Alt       string `json:"alt"`
	Type      string `json:"type"`
	URL       string `json:"url"`
}

type ProductType struct {
	ID                 ID                  `json:"id"`
	Name               string              `json:"name"`
	Slug               string              `json:"slug"`
	Kind               ProductTypeKindEnum `json:"kind"`
	HasVariants        bool                `json:"hasVariants"`
	IsShippingRequired bool                `json:"isShippingRequired"`
	IsDigital          bool                `json:"isDigital"`
	Weight             *Weight             `json:"weight"`
	TaxClass           *TaxClass           `json:"taxClass"`
	ProductAttributes  []Attribute         `json:"productAttributes"`
	VariantAttributes  []Attribute         `json:"variantAttributes"`
	Metadata           []MetadataItem      `json:"metadata"`
}

func (p ProductType) NodeID() ID { return p.ID }

type ProductVariant struct {
	ID                       ID                  `json:"id"`
	Name                     string              `json:"name"`
	SKU                      *string             `json:"sku"`
	Product                  *Product            `json:"product"`
	TrackInventory           bool                `json:"trackInventory"`
	QuantityLimitPerCustomer *int                `json:"quantityLimitPerCustomer"`
	Weight                   *Weight             `json:"weight"`
	Pricing                  *VariantPricingInfo `json:"pricing"`
	Attributes               []SelectedAttribute `json:"attributes"`
	Stocks                   []Stock             `json:"stocks"`
	QuantityAvailable        *int                `json:"quantityAvailable"`
	Preorder                 *PreorderData       `json:"preorder"`
	Created                  DateTime            `json:"created"`
	UpdatedAt                DateTime            `json:"updatedAt"`
	Metadata                 []MetadataItem      `json:"metadata"`
	ExternalReference        *string             `json:"externalReference"`
}

func (v ProductVariant) NodeID() ID { return v.ID }

type VariantPricingInfo struct {
	OnSale            *bool       `json:"onSale"`
	Discount          *TaxedMoney `json:"discount"`
	Price             *TaxedMoney `json:"price"`
	PriceUndiscounted *TaxedMoney `json:"priceUndiscounted"`
}

type PreorderData struct {
	GlobalThreshold *int      `json:"globalThreshold"`
	GlobalSoldUnits int       `json:"globalSoldUnits"`
	EndDate         *DateTime `json:"endDate"`
}

type Category struct {
	ID              ID                           `json:"id"`
	Name            string                       `json:"name"`
	Slug            string                       `json:"slug"`
	Description     *JSONString                  `json:"description"`
	Level           int                          `json:"level"`
	Parent          *Category                    `json:"parent"`
	Children        *CategoryCountableConnection `json:"children"`
	Products        *ProductCountableConnection  `json:"products"`
	BackgroundImage *Image                       `json:"backgroundImage"`
	UpdatedAt       DateTime                     `json:"updatedAt"`
	Metadata        []MetadataItem               `json:"metadata"`
}

func (c Category) NodeID() ID { return c.ID }

type Collection struct {
	ID              ID                          `json:"id"`
	Name            string                      `json:"name"`
	Slug            string                      `json:"slug"`
	Description     *JSONString                 `json:"description"`
	Channel         *string                     `json:"channel"`
	Products        *ProductCountableConnection `json:"products"`
	BackgroundImage *Image                      `json:"backgroundImage"`
	Metadata        []MetadataItem              `json:"metadata"`
}

func (c Collection) NodeID() ID { return c.ID }

type Attribute struct {
	ID                     ID                          `json:"id"`
	Name                   *string                     `json:"name"`
	Slug                   *string                     `json:"slug"`
	Type                   *AttributeTypeEnum          `json:"type"`
	InputType              *AttributeInputTypeEnum     `json:"inputType"`
	Unit                   *string                     `json:"unit"`
	ValueRequired          bool                        `json:"valueRequired"`
	VisibleInStorefront    bool                        `json:"visibleInStorefront"`
	FilterableInStorefront bool                        `json:"filterableInStorefront"`
	Choices                *Connection[AttributeValue] `json:"choices"`
}

func (a Attribute) NodeID() ID { return a.ID }

type AttributeValue struct {
	ID        ID                      `json:"id"`
	Name      *string                 `json:"name"`
	Slug      *string                 `json:"slug"`
	Value     *string                 `json:"value"`
	InputType *AttributeInputTypeEnum `json:"inputType"`
	RichText  *JSONString             `json:"richText"`
	PlainText *string                 `json:"plainText"`
	Boolean   *bool                   `json:"boolean"`
	Date      *Date                   `json:"date"`
	DateTime  *DateTime               `json:"dateTime"`
	File      *File                   `json:"file"`
}

func (v AttributeValue) NodeID() ID { return v.ID }

type File struct {
	URL         string  `json:"url"`
	ContentType *string `json:"contentType"`
}

// SelectedAttribute pairs an attribute with the values chosen for a
// product or variant.
type SelectedAttribute struct {
	Attribute Attribute        `json:"attribute"`
	Values    []AttributeValue `json:"values"`
}

type Stock struct {
	ID                ID              `json:"id"`
	Warehouse         Warehouse       `json:"warehouse"`
	ProductVariant    *ProductVariant `json:"productVariant"`
	Quantity          int             `json:"quantity"`
	QuantityAllocated int             `json:"quantityAllocated"`
	QuantityReserved  int             `json:"quantityReserved"`
}

func (s Stock) NodeID() ID { return s.ID }

// Available returns the quantity not yet allocated or reserved.
func (s Stock) Available() int {
	n := s.Quantity - s.QuantityAllocated - s.QuantityReserved
	if n < 0 {
		return 0
	}
	return n
}

type Warehouse struct {
	ID                    ID                        `json:"id"`
	Name                  string                    `json:"name"`
	Slug                  string                    `json:"slug"`
	Email                 string                    `json:"email"`
	IsPrivate             bool                      `json:"isPrivate"`
	Address               Address                   `json:"address"`
	CompanyName           string                    `json:"companyName"`
	ClickAndCollectOption string                    `json:"clickAndCollectOption"`
	ShippingZones         *Connection[ShippingZone] `json:"shippingZones"`
	ExternalReference     *string                   `json:"externalReference"`
	Metadata              []MetadataItem            `json:"metadata"`
}

func (w Warehouse) NodeID() ID { return w.ID }

type ProductError struct {
	Field      *string          `json:"field"`
	Message    *string          `json:"message"`
	Code       ProductErrorCode `json:"code"`
	Attributes []ID             `json:"attributes"`
	Values     []ID             `json:"values"`
}
