package schema

type Payment struct {
	ID                     ID                      `json:"id"`
	Gateway                string                  `json:"gateway"`
	IsActive               bool                    `json:"isActive"`
	Created                DateTime                `json:"created"`
	Modified               DateTime                `json:"modified"`
	Token                  string                  `json:"token"`
	Checkout               *Checkout               `json:"checkout"`
	Order                  *Order                  `json:"order"`
	PaymentMethodType      string                  `json:"paymentMethodType"`
	CustomerIPAddress      *string                 `json:"customerIpAddress"`
	ChargeStatus           PaymentChargeStatusEnum `json:"chargeStatus"`
	Total                  *Money                  `json:"total"`
	CapturedAmount         *Money                  `json:"capturedAmount"`
	AvailableCaptureAmount *Money                  `json:"availableCaptureAmount"`
	AvailableRefundAmount  *Money                  `json:"availableRefundAmount"`
	PSPReference           *string                 `json:"pspReference"`
	Metadata               []MetadataItem          `json:"metadata"`
}

func (p Payment) NodeID() ID { return p.ID }

// TransactionItem is a payment tracked by a payment app through the
// transaction API.
type TransactionItem struct {
	ID                     ID                      `json:"id"`
	Token                  UUID                    `json:"token"`
	Name                   string                  `json:"name"`
	Message                string                  `json:"message"`
	PSPReference           string                  `json:"pspReference"`
	ExternalURL            string                  `json:"externalUrl"`
	CreatedAt              DateTime                `json:"createdAt"`
	ModifiedAt             DateTime                `json:"modifiedAt"`
	Actions                []TransactionActionEnum `json:"actions"`
	AuthorizedAmount       Money                   `json:"authorizedAmount"`
	AuthorizePendingAmount Money                   `json:"authorizePendingAmount"`
	ChargedAmount          Money                   `json:"chargedAmount"`
	ChargePendingAmount    Money                   `json:"chargePendingAmount"`
	RefundedAmount         Money                   `json:"refundedAmount"`
	RefundPendingAmount    Money                   `json:"refundPendingAmount"`
	CanceledAmount         Money                   `json:"canceledAmount"`
	CancelPendingAmount    Money                   `json:"cancelPendingAmount"`
	Events                 []TransactionEvent      `json:"events"`
	Metadata               []MetadataItem          `json:"metadata"`
}

func (t TransactionItem) NodeID() ID { return t.ID }

// CanPerform reports whether action is currently offered for the
// transaction.
func (t TransactionItem) CanPerform(action TransactionActionEnum) bool {
	for _, a := range t.Actions {
		if a == action {
			return true
		}
	}
	return false
}

type TransactionEvent struct {
	ID           ID                        `json:"id"`
	PSPReference string                    `json:"pspReference"`
	Message      string                    `json:"message"`
	ExternalURL  string                    `json:"externalUrl"`
	CreatedAt    DateTime                  `json:"createdAt"`
	Type         *TransactionEventTypeEnum `json:"type"`
	Amount       Money                     `json:"amount"`
}

func (e TransactionEvent) NodeID() ID { return e.ID }

type PaymentError struct {
	Field    *string          `json:"field"`
	Message  *string          `json:"message"`
	Code     PaymentErrorCode `json:"code"`
	Variants []ID             `json:"variants"`
}

type GiftCard struct {
	ID              ID             `json:"id"`
	Code            string         `json:"code"`
	Last4CodeChars  string         `json:"last4CodeChars"`
	IsActive        bool           `json:"isActive"`
	ExpiryDate      *Date          `json:"expiryDate"`
	Tags            []GiftCardTag  `json:"tags"`
	Created         DateTime       `json:"created"`
	LastUsedOn      *DateTime      `json:"lastUsedOn"`
	InitialBalance  Money          `json:"initialBalance"`
	CurrentBalance  Money          `json:"currentBalance"`
	CreatedBy       *User          `json:"createdBy"`
	UsedByEmail     *string        `json:"usedByEmail"`
	CreatedByEmail  *string        `json:"createdByEmail"`
	BoughtInChannel *string        `json:"boughtInChannel"`
	Metadata        []MetadataItem `json:"metadata"`
}

func (g GiftCard) NodeID() ID { return g.ID }

type GiftCardTag struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type GiftCardError struct {
	Field   *string           `json:"field"`
	Message *string           `json:"message"`
	Code    GiftCardErrorCode `json:"code"`
	Tags    []string          `json:"tags"`
}
