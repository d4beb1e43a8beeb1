package schema

// User is a customer or, when IsStaff is set, a staff member.
type User struct {
	ID                         ID                           `json:"id"`
	Email                      string                       `json:"email"`
	FirstName                  string                       `json:"firstName"`
	LastName                   string                       `json:"lastName"`
	IsStaff                    bool                         `json:"isStaff"`
	IsActive                   bool                         `json:"isActive"`
	IsConfirmed                bool                         `json:"isConfirmed"`
	LanguageCode               string                       `json:"languageCode"`
	Note                       *string                      `json:"note"`
	DateJoined                 DateTime                     `json:"dateJoined"`
	UpdatedAt                  DateTime                     `json:"updatedAt"`
	LastLogin                  *DateTime                    `json:"lastLogin"`
	DefaultShippingAddress     *Address                     `json:"defaultShippingAddress"`
	DefaultBillingAddress      *Address                     `json:"defaultBillingAddress"`
	Addresses                  []Address                    `json:"addresses"`
	Avatar                     *Image                       `json:"avatar"`
	UserPermissions            []UserPermission             `json:"userPermissions"`
	PermissionGroups           []Group                      `json:"permissionGroups"`
	Orders                     *OrderCountableConnection    `json:"orders"`
	Metadata                   []MetadataItem               `json:"metadata"`
	PrivateMetadata            []MetadataItem               `json:"privateMetadata"`
	ExternalReference          *string                      `json:"externalReference"`
	CheckoutIds                []ID                         `json:"checkoutIds"`
	GiftCards                  *GiftCardCountableConnection `json:"giftCards"`
	RestrictedAccessToChannels bool                         `json:"restrictedAccessToChannels"`
}

func (u User) NodeID() ID { return u.ID }

// HasPermission reports whether the user holds code directly or through
// one of its groups.
func (u User) HasPermission(code PermissionEnum) bool {
	for _, p := range u.UserPermissions {
		if p.Code == code {
			return true
		}
	}
	for _, g := range u.PermissionGroups {
		for _, p := range g.Permissions {
			if p.Code == code {
				return true
			}
		}
	}
	return false
}

type UserPermission struct {
	Code PermissionEnum `json:"code"`
	Name string         `json:"name"`
}

type Permission struct {
	Code PermissionEnum `json:"code"`
	Name string         `json:"name"`
}

// Group is a permission group of staff users.
type Group struct {
	ID                         ID           `json:"id"`
	Name                       string       `json:"name"`
	Permissions                []Permission `json:"permissions"`
	Users                      []User       `json:"users"`
	UserCanManage              bool         `json:"userCanManage"`
	RestrictedAccessToChannels bool         `json:"restrictedAccessToChannels"`
	AccessibleChannels         []Channel    `json:"accessibleChannels"`
}

func (g Group) NodeID() ID { return g.ID }

type Address struct {
	ID                       ID             `json:"id"`
	FirstName                string         `json:"firstName"`
	LastName                 string         `json:"lastName"`
	CompanyName              string         `json:"companyName"`
	StreetAddress1           string         `json:"streetAddress1"`
	StreetAddress2           string         `json:"streetAddress2"`
	City                     string         `json:"city"`
	CityArea                 string         `json:"cityArea"`
	PostalCode               string         `json:"postalCode"`
	Country                  CountryDisplay `json:"country"`
	CountryArea              string         `json:"countryArea"`
	Phone                    *string        `json:"phone"`
	IsDefaultShippingAddress *bool          `json:"isDefaultShippingAddress"`
	IsDefaultBillingAddress  *bool          `json:"isDefaultBillingAddress"`
	Metadata                 []MetadataItem `json:"metadata"`
}

func (a Address) NodeID() ID { return a.ID }

// App is an installed third-party or local integration.
type App struct {
	ID          ID             `json:"id"`
	Name        *string        `json:"name"`
	Identifier  *string        `json:"identifier"`
	IsActive    *bool          `json:"isActive"`
	Type        *AppTypeEnum   `json:"type"`
	Version     *string        `json:"version"`
	Created     *DateTime      `json:"created"`
	AppURL      *string        `json:"appUrl"`
	Permissions []Permission   `json:"permissions"`
	Webhooks    []Webhook      `json:"webhooks"`
	Metadata    []MetadataItem `json:"metadata"`
}

func (a App) NodeID() ID { return a.ID }

// AccountError is a mutation-level error of the account mutations.
type AccountError struct {
	Field       *string          `json:"field"`
	Message     *string          `json:"message"`
	Code        AccountErrorCode `json:"code"`
	AddressType *AddressTypeEnum `json:"addressType"`
}
