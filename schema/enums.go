package schema

import "slices"

// AccountErrorCode is the code of an AccountError.
type AccountErrorCode string

const (
	AccountErrorCodeAccountNotConfirmed           AccountErrorCode = "ACCOUNT_NOT_CONFIRMED"
	AccountErrorCodeActivateOwnAccount            AccountErrorCode = "ACTIVATE_OWN_ACCOUNT"
	AccountErrorCodeActivateSuperuserAccount      AccountErrorCode = "ACTIVATE_SUPERUSER_ACCOUNT"
	AccountErrorCodeDuplicatedInputItem           AccountErrorCode = "DUPLICATED_INPUT_ITEM"
	AccountErrorCodeDeactivateOwnAccount          AccountErrorCode = "DEACTIVATE_OWN_ACCOUNT"
	AccountErrorCodeDeactivateSuperuserAccount    AccountErrorCode = "DEACTIVATE_SUPERUSER_ACCOUNT"
	AccountErrorCodeDeleteNonStaffUser            AccountErrorCode = "DELETE_NON_STAFF_USER"
	AccountErrorCodeDeleteOwnAccount              AccountErrorCode = "DELETE_OWN_ACCOUNT"
	AccountErrorCodeDeleteStaffAccount            AccountErrorCode = "DELETE_STAFF_ACCOUNT"
	AccountErrorCodeDeleteSuperuserAccount        AccountErrorCode = "DELETE_SUPERUSER_ACCOUNT"
	AccountErrorCodeGraphqlError                  AccountErrorCode = "GRAPHQL_ERROR"
	AccountErrorCodeInactive                      AccountErrorCode = "INACTIVE"
	AccountErrorCodeInvalid                       AccountErrorCode = "INVALID"
	AccountErrorCodeInvalidPassword               AccountErrorCode = "INVALID_PASSWORD"
	AccountErrorCodeLeftNotManageablePermission   AccountErrorCode = "LEFT_NOT_MANAGEABLE_PERMISSION"
	AccountErrorCodeInvalidCredentials            AccountErrorCode = "INVALID_CREDENTIALS"
	AccountErrorCodeNotFound                      AccountErrorCode = "NOT_FOUND"
	AccountErrorCodeOutOfScopeUser                AccountErrorCode = "OUT_OF_SCOPE_USER"
	AccountErrorCodeOutOfScopeGroup               AccountErrorCode = "OUT_OF_SCOPE_GROUP"
	AccountErrorCodeOutOfScopePermission          AccountErrorCode = "OUT_OF_SCOPE_PERMISSION"
	AccountErrorCodePasswordEntirelyNumeric       AccountErrorCode = "PASSWORD_ENTIRELY_NUMERIC"
	AccountErrorCodePasswordTooCommon             AccountErrorCode = "PASSWORD_TOO_COMMON"
	AccountErrorCodePasswordTooShort              AccountErrorCode = "PASSWORD_TOO_SHORT"
	AccountErrorCodePasswordTooSimilar            AccountErrorCode = "PASSWORD_TOO_SIMILAR"
	AccountErrorCodePasswordResetAlreadyRequested AccountErrorCode = "PASSWORD_RESET_ALREADY_REQUESTED"
	AccountErrorCodeRequired                      AccountErrorCode = "REQUIRED"
	AccountErrorCodeUnique                        AccountErrorCode = "UNIQUE"
	AccountErrorCodeJWTSignatureExpired           AccountErrorCode = "JWT_SIGNATURE_EXPIRED"
	AccountErrorCodeJWTInvalidToken               AccountErrorCode = "JWT_INVALID_TOKEN"
	AccountErrorCodeJWTDecodeError                AccountErrorCode = "JWT_DECODE_ERROR"
	AccountErrorCodeJWTMissingToken               AccountErrorCode = "JWT_MISSING_TOKEN"
	AccountErrorCodeJWTInvalidCSRFToken           AccountErrorCode = "JWT_INVALID_CSRF_TOKEN"
	AccountErrorCodeChannelInactive               AccountErrorCode = "CHANNEL_INACTIVE"
	AccountErrorCodeLoginAttemptDelayed           AccountErrorCode = "LOGIN_ATTEMPT_DELAYED"
	AccountErrorCodeUnknownIPAddress              AccountErrorCode = "UNKNOWN_IP_ADDRESS"
)

var accountErrorCodeValues = []AccountErrorCode{
	AccountErrorCodeAccountNotConfirmed,
	AccountErrorCodeActivateOwnAccount,
	AccountErrorCodeActivateSuperuserAccount,
	AccountErrorCodeDuplicatedInputItem,
	AccountErrorCodeDeactivateOwnAccount,
	AccountErrorCodeDeactivateSuperuserAccount,
	AccountErrorCodeDeleteNonStaffUser,
	AccountErrorCodeDeleteOwnAccount,
	AccountErrorCodeDeleteStaffAccount,
	AccountErrorCodeDeleteSuperuserAccount,
	AccountErrorCodeGraphqlError,
	AccountErrorCodeInactive,
	AccountErrorCodeInvalid,
	AccountErrorCodeInvalidPassword,
	AccountErrorCodeLeftNotManageablePermission,
	AccountErrorCodeInvalidCredentials,
	AccountErrorCodeNotFound,
	AccountErrorCodeOutOfScopeUser,
	AccountErrorCodeOutOfScopeGroup,
	AccountErrorCodeOutOfScopePermission,
	AccountErrorCodePasswordEntirelyNumeric,
	AccountErrorCodePasswordTooCommon,
	AccountErrorCodePasswordTooShort,
	AccountErrorCodePasswordTooSimilar,
	AccountErrorCodePasswordResetAlreadyRequested,
	AccountErrorCodeRequired,
	AccountErrorCodeUnique,
	AccountErrorCodeJWTSignatureExpired,
	AccountErrorCodeJWTInvalidToken,
	AccountErrorCodeJWTDecodeError,
	AccountErrorCodeJWTMissingToken,
	AccountErrorCodeJWTInvalidCSRFToken,
	AccountErrorCodeChannelInactive,
	AccountErrorCodeLoginAttemptDelayed,
	AccountErrorCodeUnknownIPAddress,
}

func (AccountErrorCode) Values() []AccountErrorCode {
	return slices.Clone(accountErrorCodeValues)
}

func (e AccountErrorCode) IsValid() bool {
	return slices.Contains(accountErrorCodeValues, e)
}

func (e AccountErrorCode) String() string { return string(e) }

func (e *AccountErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "AccountErrorCode")
}

// AddressTypeEnum tells billing and shipping addresses apart.
type AddressTypeEnum string

const (
	AddressTypeEnumBilling  AddressTypeEnum = "BILLING"
	AddressTypeEnumShipping AddressTypeEnum = "SHIPPING"
)

var addressTypeEnumValues = []AddressTypeEnum{
	AddressTypeEnumBilling,
	AddressTypeEnumShipping,
}

func (AddressTypeEnum) Values() []AddressTypeEnum {
	return slices.Clone(addressTypeEnumValues)
}

func (e AddressTypeEnum) IsValid() bool {
	return slices.Contains(addressTypeEnumValues, e)
}

func (e AddressTypeEnum) String() string { return string(e) }

func (e *AddressTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "AddressTypeEnum")
}

// CheckoutErrorCode is the code of a CheckoutError.
type CheckoutErrorCode string

const (
	CheckoutErrorCodeBillingAddressNotSet          CheckoutErrorCode = "BILLING_ADDRESS_NOT_SET"
	CheckoutErrorCodeCheckoutNotFullyPaid          CheckoutErrorCode = "CHECKOUT_NOT_FULLY_PAID"
	CheckoutErrorCodeGraphqlError                  CheckoutErrorCode = "GRAPHQL_ERROR"
	CheckoutErrorCodeProductNotPublished           CheckoutErrorCode = "PRODUCT_NOT_PUBLISHED"
	CheckoutErrorCodeProductUnavailableForPurchase CheckoutErrorCode = "PRODUCT_UNAVAILABLE_FOR_PURCHASE"
	CheckoutErrorCodeInsufficientStock             CheckoutErrorCode = "INSUFFICIENT_STOCK"
	CheckoutErrorCodeInvalid                       CheckoutErrorCode = "INVALID"
	CheckoutErrorCodeInvalidShippingMethod         CheckoutErrorCode = "INVALID_SHIPPING_METHOD"
	CheckoutErrorCodeNotFound                      CheckoutErrorCode = "NOT_FOUND"
	CheckoutErrorCodePaymentError                  CheckoutErrorCode = "PAYMENT_ERROR"
	CheckoutErrorCodeQuantityGreaterThanLimit      CheckoutErrorCode = "QUANTITY_GREATER_THAN_LIMIT"
	CheckoutErrorCodeRequired                      CheckoutErrorCode = "REQUIRED"
	CheckoutErrorCodeShippingAddressNotSet         CheckoutErrorCode = "SHIPPING_ADDRESS_NOT_SET"
	CheckoutErrorCodeShippingMethodNotApplicable   CheckoutErrorCode = "SHIPPING_METHOD_NOT_APPLICABLE"
	CheckoutErrorCodeDeliveryMethodNotApplicable   CheckoutErrorCode = "DELIVERY_METHOD_NOT_APPLICABLE"
	CheckoutErrorCodeShippingMethodNotSet          CheckoutErrorCode = "SHIPPING_METHOD_NOT_SET"
	CheckoutErrorCodeShippingNotRequired           CheckoutErrorCode = "SHIPPING_NOT_REQUIRED"
	CheckoutErrorCodeTaxError                      CheckoutErrorCode = "TAX_ERROR"
	CheckoutErrorCodeUnique                        CheckoutErrorCode = "UNIQUE"
	CheckoutErrorCodeVoucherNotApplicable          CheckoutErrorCode = "VOUCHER_NOT_APPLICABLE"
	CheckoutErrorCodeGiftCardNotApplicable         CheckoutErrorCode = "GIFT_CARD_NOT_APPLICABLE"
	CheckoutErrorCodeZeroQuantity                  CheckoutErrorCode = "ZERO_QUANTITY"
	CheckoutErrorCodeMissingChannelSlug            CheckoutErrorCode = "MISSING_CHANNEL_SLUG"
	CheckoutErrorCodeChannelInactive               CheckoutErrorCode = "CHANNEL_INACTIVE"
	CheckoutErrorCodeUnavailableVariantInChannel   CheckoutErrorCode = "UNAVAILABLE_VARIANT_IN_CHANNEL"
	CheckoutErrorCodeEmailNotSet                   CheckoutErrorCode = "EMAIL_NOT_SET"
	CheckoutErrorCodeNoLines                       CheckoutErrorCode = "NO_LINES"
	CheckoutErrorCodeInactivePayment               CheckoutErrorCode = "INACTIVE_PAYMENT"
)

var checkoutErrorCodeValues = []CheckoutErrorCode{
	CheckoutErrorCodeBillingAddressNotSet,
	CheckoutErrorCodeCheckoutNotFullyPaid,
	CheckoutErrorCodeGraphqlError,
	CheckoutErrorCodeProductNotPublished,
	CheckoutErrorCodeProductUnavailableForPurchase,
	CheckoutErrorCodeInsufficientStock,
	CheckoutErrorCodeInvalid,
	CheckoutErrorCodeInvalidShippingMethod,
	CheckoutErrorCodeNotFound,
	CheckoutErrorCodePaymentError,
	CheckoutErrorCodeQuantityGreaterThanLimit,
	CheckoutErrorCodeRequired,
	CheckoutErrorCodeShippingAddressNotSet,
	CheckoutErrorCodeShippingMethodNotApplicable,
	CheckoutErrorCodeDeliveryMethodNotApplicable,
	CheckoutErrorCodeShippingMethodNotSet,
	CheckoutErrorCodeShippingNotRequired,
	CheckoutErrorCodeTaxError,
	CheckoutErrorCodeUnique,
	CheckoutErrorCodeVoucherNotApplicable,
	CheckoutErrorCodeGiftCardNotApplicable,
	CheckoutErrorCodeZeroQuantity,
	CheckoutErrorCodeMissingChannelSlug,
	CheckoutErrorCodeChannelInactive,
	CheckoutErrorCodeUnavailableVariantInChannel,
	CheckoutErrorCodeEmailNotSet,
	CheckoutErrorCodeNoLines,
	CheckoutErrorCodeInactivePayment,
}

func (CheckoutErrorCode) Values() []CheckoutErrorCode {
	return slices.Clone(checkoutErrorCodeValues)
}

func (e CheckoutErrorCode) IsValid() bool {
	return slices.Contains(checkoutErrorCodeValues, e)
}

func (e CheckoutErrorCode) String() string { return string(e) }

func (e *CheckoutErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "CheckoutErrorCode")
}

// OrderErrorCode is the code of an OrderError.
type OrderErrorCode string

const (
	OrderErrorCodeBillingAddressNotSet                   OrderErrorCode = "BILLING_ADDRESS_NOT_SET"
	OrderErrorCodeCannotCancelFulfillment                OrderErrorCode = "CANNOT_CANCEL_FULFILLMENT"
	OrderErrorCodeCannotCancelOrder                      OrderErrorCode = "CANNOT_CANCEL_ORDER"
	OrderErrorCodeCannotDelete                           OrderErrorCode = "CANNOT_DELETE"
	OrderErrorCodeCannotDiscount                         OrderErrorCode = "CANNOT_DISCOUNT"
	OrderErrorCodeCannotRefund                           OrderErrorCode = "CANNOT_REFUND"
	OrderErrorCodeCannotFulfillUnpaidOrder               OrderErrorCode = "CANNOT_FULFILL_UNPAID_ORDER"
	OrderErrorCodeCaptureInactivePayment                 OrderErrorCode = "CAPTURE_INACTIVE_PAYMENT"
	OrderErrorCodeGiftCardLine                           OrderErrorCode = "GIFT_CARD_LINE"
	OrderErrorCodeNotEditable                            OrderErrorCode = "NOT_EDITABLE"
	OrderErrorCodeFulfillOrderLine                       OrderErrorCode = "FULFILL_ORDER_LINE"
	OrderErrorCodeGraphqlError                           OrderErrorCode = "GRAPHQL_ERROR"
	OrderErrorCodeInvalid                                OrderErrorCode = "INVALID"
	OrderErrorCodeProductNotPublished                    OrderErrorCode = "PRODUCT_NOT_PUBLISHED"
	OrderErrorCodeProductUnavailableForPurchase          OrderErrorCode = "PRODUCT_UNAVAILABLE_FOR_PURCHASE"
	OrderErrorCodeNotFound                               OrderErrorCode = "NOT_FOUND"
	OrderErrorCodeOrderNoShippingAddress                 OrderErrorCode = "ORDER_NO_SHIPPING_ADDRESS"
	OrderErrorCodePaymentError                           OrderErrorCode = "PAYMENT_ERROR"
	OrderErrorCodePaymentMissing                         OrderErrorCode = "PAYMENT_MISSING"
	OrderErrorCodeTransactionError                       OrderErrorCode = "TRANSACTION_ERROR"
	OrderErrorCodeRequired                               OrderErrorCode = "REQUIRED"
	OrderErrorCodeShippingMethodNotApplicable            OrderErrorCode = "SHIPPING_METHOD_NOT_APPLICABLE"
	OrderErrorCodeShippingMethodRequired                 OrderErrorCode = "SHIPPING_METHOD_REQUIRED"
	OrderErrorCodeTaxError                               OrderErrorCode = "TAX_ERROR"
	OrderErrorCodeUnique                                 OrderErrorCode = "UNIQUE"
	OrderErrorCodeVoidInactivePayment                    OrderErrorCode = "VOID_INACTIVE_PAYMENT"
	OrderErrorCodeZeroQuantity                           OrderErrorCode = "ZERO_QUANTITY"
	OrderErrorCodeInvalidQuantity                        OrderErrorCode = "INVALID_QUANTITY"
	OrderErrorCodeInsufficientStock                      OrderErrorCode = "INSUFFICIENT_STOCK"
	OrderErrorCodeDuplicatedInputItem                    OrderErrorCode = "DUPLICATED_INPUT_ITEM"
	OrderErrorCodeNotAvailableInChannel                  OrderErrorCode = "NOT_AVAILABLE_IN_CHANNEL"
	OrderErrorCodeChannelInactive                        OrderErrorCode = "CHANNEL_INACTIVE"
	OrderErrorCodeMissingTransactionActionRequestWebhook OrderErrorCode = "MISSING_TRANSACTION_ACTION_REQUEST_WEBHOOK"
)

var orderErrorCodeValues = []OrderErrorCode{
	OrderErrorCodeBillingAddressNotSet,
	OrderErrorCodeCannotCancelFulfillment,
	OrderErrorCodeCannotCancelOrder,
	OrderErrorCodeCannotDelete,
	OrderErrorCodeCannotDiscount,
	OrderErrorCodeCannotRefund,
	OrderErrorCodeCannotFulfillUnpaidOrder,
	OrderErrorCodeCaptureInactivePayment,
	OrderErrorCodeGiftCardLine,
	OrderErrorCodeNotEditable,
	OrderErrorCodeFulfillOrderLine,
	OrderErrorCodeGraphqlError,
	OrderErrorCodeInvalid,
	OrderErrorCodeProductNotPublished,
	OrderErrorCodeProductUnavailableForPurchase,
	OrderErrorCodeNotFound,
	OrderErrorCodeOrderNoShippingAddress,
	OrderErrorCodePaymentError,
	OrderErrorCodePaymentMissing,
	OrderErrorCodeTransactionError,
	OrderErrorCodeRequired,
	OrderErrorCodeShippingMethodNotApplicable,
	OrderErrorCodeShippingMethodRequired,
	OrderErrorCodeTaxError,
	OrderErrorCodeUnique,
	OrderErrorCodeVoidInactivePayment,
	OrderErrorCodeZeroQuantity,
	OrderErrorCodeInvalidQuantity,
	OrderErrorCodeInsufficientStock,
	OrderErrorCodeDuplicatedInputItem,
	OrderErrorCodeNotAvailableInChannel,
	OrderErrorCodeChannelInactive,
	OrderErrorCodeMissingTransactionActionRequestWebhook,
}

func (OrderErrorCode) Values() []OrderErrorCode {
	return slices.Clone(orderErrorCodeValues)
}

func (e OrderErrorCode) IsValid() bool {
	return slices.Contains(orderErrorCodeValues, e)
}

func (e OrderErrorCode) String() string { return string(e) }

func (e *OrderErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "OrderErrorCode")
}

// ProductErrorCode is the code of a ProductError.
type ProductErrorCode string

const (
	ProductErrorCodeAlreadyExists                      ProductErrorCode = "ALREADY_EXISTS"
	ProductErrorCodeAttributeAlreadyAssigned           ProductErrorCode = "ATTRIBUTE_ALREADY_ASSIGNED"
	ProductErrorCodeAttributeCannotBeAssigned          ProductErrorCode = "ATTRIBUTE_CANNOT_BE_ASSIGNED"
	ProductErrorCodeAttributeVariantsDisabled          ProductErrorCode = "ATTRIBUTE_VARIANTS_DISABLED"
	ProductErrorCodeMediaAlreadyAssigned               ProductErrorCode = "MEDIA_ALREADY_ASSIGNED"
	ProductErrorCodeDuplicatedInputItem                ProductErrorCode = "DUPLICATED_INPUT_ITEM"
	ProductErrorCodeGraphqlError                       ProductErrorCode = "GRAPHQL_ERROR"
	ProductErrorCodeInvalid                            ProductErrorCode = "INVALID"
	ProductErrorCodeInvalidPrice                       ProductErrorCode = "INVALID_PRICE"
	ProductErrorCodeProductWithoutCategory             ProductErrorCode = "PRODUCT_WITHOUT_CATEGORY"
	ProductErrorCodeNotProductsImage                   ProductErrorCode = "NOT_PRODUCTS_IMAGE"
	ProductErrorCodeNotProductsVariant                 ProductErrorCode = "NOT_PRODUCTS_VARIANT"
	ProductErrorCodeNotFound                           ProductErrorCode = "NOT_FOUND"
	ProductErrorCodeRequired                           ProductErrorCode = "REQUIRED"
	ProductErrorCodeUnique                             ProductErrorCode = "UNIQUE"
	ProductErrorCodeVariantNoDigitalContent            ProductErrorCode = "VARIANT_NO_DIGITAL_CONTENT"
	ProductErrorCodeCannotManageProductWithoutVariant  ProductErrorCode = "CANNOT_MANAGE_PRODUCT_WITHOUT_VARIANT"
	ProductErrorCodeProductNotAssignedToChannel        ProductErrorCode = "PRODUCT_NOT_ASSIGNED_TO_CHANNEL"
	ProductErrorCodeUnsupportedMediaProvider           ProductErrorCode = "UNSUPPORTED_MEDIA_PROVIDER"
	ProductErrorCodePreorderVariantCannotBeDeactivated ProductErrorCode = "PREORDER_VARIANT_CANNOT_BE_DEACTIVATED"
)

var productErrorCodeValues = []ProductErrorCode{
	ProductErrorCodeAlreadyExists,
	ProductErrorCodeAttributeAlreadyAssigned,
	ProductErrorCodeAttributeCannotBeAssigned,
	ProductErrorCodeAttributeVariantsDisabled,
	ProductErrorCodeMediaAlreadyAssigned,
	ProductErrorCodeDuplicatedInputItem,
	ProductErrorCodeGraphqlError,
	ProductErrorCodeInvalid,
	ProductErrorCodeInvalidPrice,
	ProductErrorCodeProductWithoutCategory,
	ProductErrorCodeNotProductsImage,
	ProductErrorCodeNotProductsVariant,
	ProductErrorCodeNotFound,
	ProductErrorCodeRequired,
	ProductErrorCodeUnique,
	ProductErrorCodeVariantNoDigitalContent,
	ProductErrorCodeCannotManageProductWithoutVariant,
	ProductErrorCodeProductNotAssignedToChannel,
	ProductErrorCodeUnsupportedMediaProvider,
	ProductErrorCodePreorderVariantCannotBeDeactivated,
}

func (ProductErrorCode) Values() []ProductErrorCode {
	return slices.Clone(productErrorCodeValues)
}

func (e ProductErrorCode) IsValid() bool {
	return slices.Contains(productErrorCodeValues, e)
}

func (e ProductErrorCode) String() string { return string(e) }

func (e *ProductErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "ProductErrorCode")
}

// PaymentErrorCode is the code of a PaymentError.
type PaymentErrorCode string

const (
	PaymentErrorCodeBillingAddressNotSet        PaymentErrorCode = "BILLING_ADDRESS_NOT_SET"
	PaymentErrorCodeGraphqlError                PaymentErrorCode = "GRAPHQL_ERROR"
	PaymentErrorCodeInvalid                     PaymentErrorCode = "INVALID"
	PaymentErrorCodeNotFound                    PaymentErrorCode = "NOT_FOUND"
	PaymentErrorCodePartialPaymentNotAllowed    PaymentErrorCode = "PARTIAL_PAYMENT_NOT_ALLOWED"
	PaymentErrorCodeShippingAddressNotSet       PaymentErrorCode = "SHIPPING_ADDRESS_NOT_SET"
	PaymentErrorCodeInvalidShippingMethod       PaymentErrorCode = "INVALID_SHIPPING_METHOD"
	PaymentErrorCodeShippingMethodNotSet        PaymentErrorCode = "SHIPPING_METHOD_NOT_SET"
	PaymentErrorCodePaymentError                PaymentErrorCode = "PAYMENT_ERROR"
	PaymentErrorCodeNotSupportedGateway         PaymentErrorCode = "NOT_SUPPORTED_GATEWAY"
	PaymentErrorCodeChannelInactive             PaymentErrorCode = "CHANNEL_INACTIVE"
	PaymentErrorCodeBalanceCheckError           PaymentErrorCode = "BALANCE_CHECK_ERROR"
	PaymentErrorCodeCheckoutEmailNotSet         PaymentErrorCode = "CHECKOUT_EMAIL_NOT_SET"
	PaymentErrorCodeUnavailableVariantInChannel PaymentErrorCode = "UNAVAILABLE_VARIANT_IN_CHANNEL"
	PaymentErrorCodeNoCheckoutLines             PaymentErrorCode = "NO_CHECKOUT_LINES"
	PaymentErrorCodeRequired                    PaymentErrorCode = "REQUIRED"
	PaymentErrorCodeUnique                      PaymentErrorCode = "UNIQUE"
)

var paymentErrorCodeValues = []PaymentErrorCode{
	PaymentErrorCodeBillingAddressNotSet,
	PaymentErrorCodeGraphqlError,
	PaymentErrorCodeInvalid,
	PaymentErrorCodeNotFound,
	PaymentErrorCodePartialPaymentNotAllowed,
	PaymentErrorCodeShippingAddressNotSet,
	PaymentErrorCodeInvalidShippingMethod,
	PaymentErrorCodeShippingMethodNotSet,
	PaymentErrorCodePaymentError,
	PaymentErrorCodeNotSupportedGateway,
	PaymentErrorCodeChannelInactive,
	PaymentErrorCodeBalanceCheckError,
	PaymentErrorCodeCheckoutEmailNotSet,
	PaymentErrorCodeUnavailableVariantInChannel,
	PaymentErrorCodeNoCheckoutLines,
	PaymentErrorCodeRequired,
	PaymentErrorCodeUnique,
}

func (PaymentErrorCode) Values() []PaymentErrorCode {
	return slices.Clone(paymentErrorCodeValues)
}

func (e PaymentErrorCode) IsValid() bool {
	return slices.Contains(paymentErrorCodeValues, e)
}

func (e PaymentErrorCode) String() string { return string(e) }

func (e *PaymentErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "PaymentErrorCode")
}

// GiftCardErrorCode is the code of a GiftCardError.
type GiftCardErrorCode string

const (
	GiftCardErrorCodeAlreadyExists       GiftCardErrorCode = "ALREADY_EXISTS"
	GiftCardErrorCodeGraphqlError        GiftCardErrorCode = "GRAPHQL_ERROR"
	GiftCardErrorCodeInvalid             GiftCardErrorCode = "INVALID"
	GiftCardErrorCodeNotFound            GiftCardErrorCode = "NOT_FOUND"
	GiftCardErrorCodeRequired            GiftCardErrorCode = "REQUIRED"
	GiftCardErrorCodeUnique              GiftCardErrorCode = "UNIQUE"
	GiftCardErrorCodeExpiredGiftCard     GiftCardErrorCode = "EXPIRED_GIFT_CARD"
	GiftCardErrorCodeDuplicatedInputItem GiftCardErrorCode = "DUPLICATED_INPUT_ITEM"
)

var giftCardErrorCodeValues = []GiftCardErrorCode{
	GiftCardErrorCodeAlreadyExists,
	GiftCardErrorCodeGraphqlError,
	GiftCardErrorCodeInvalid,
	GiftCardErrorCodeNotFound,
	GiftCardErrorCodeRequired,
	GiftCardErrorCodeUnique,
	GiftCardErrorCodeExpiredGiftCard,
	GiftCardErrorCodeDuplicatedInputItem,
}

func (GiftCardErrorCode) Values() []GiftCardErrorCode {
	return slices.Clone(giftCardErrorCodeValues)
}

func (e GiftCardErrorCode) IsValid() bool {
	return slices.Contains(giftCardErrorCodeValues, e)
}

func (e GiftCardErrorCode) String() string { return string(e) }

func (e *GiftCardErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "GiftCardErrorCode")
}

// WebhookErrorCode is the code of a WebhookError.
type WebhookErrorCode string

const (
	WebhookErrorCodeGraphqlError                  WebhookErrorCode = "GRAPHQL_ERROR"
	WebhookErrorCodeInvalid                       WebhookErrorCode = "INVALID"
	WebhookErrorCodeNotFound                      WebhookErrorCode = "NOT_FOUND"
	WebhookErrorCodeRequired                      WebhookErrorCode = "REQUIRED"
	WebhookErrorCodeUnique                        WebhookErrorCode = "UNIQUE"
	WebhookErrorCodeDeleteFailed                  WebhookErrorCode = "DELETE_FAILED"
	WebhookErrorCodeSyntax                        WebhookErrorCode = "SYNTAX"
	WebhookErrorCodeMissingSubscription           WebhookErrorCode = "MISSING_SUBSCRIPTION"
	WebhookErrorCodeUnableToParse                 WebhookErrorCode = "UNABLE_TO_PARSE"
	WebhookErrorCodeMissingEvent                  WebhookErrorCode = "MISSING_EVENT"
	WebhookErrorCodeInvalidCustomHeaders          WebhookErrorCode = "INVALID_CUSTOM_HEADERS"
	WebhookErrorCodeInvalidNotifyWithSubscription WebhookErrorCode = "INVALID_NOTIFY_WITH_SUBSCRIPTION"
)

var webhookErrorCodeValues = []WebhookErrorCode{
	WebhookErrorCodeGraphqlError,
	WebhookErrorCodeInvalid,
	WebhookErrorCodeNotFound,
	WebhookErrorCodeRequired,
	WebhookErrorCodeUnique,
	WebhookErrorCodeDeleteFailed,
	WebhookErrorCodeSyntax,
	WebhookErrorCodeMissingSubscription,
	WebhookErrorCodeUnableToParse,
	WebhookErrorCodeMissingEvent,
	WebhookErrorCodeInvalidCustomHeaders,
	WebhookErrorCodeInvalidNotifyWithSubscription,
}

func (WebhookErrorCode) Values() []WebhookErrorCode {
	return slices.Clone(webhookErrorCodeValues)
}

func (e WebhookErrorCode) IsValid() bool {
	return slices.Contains(webhookErrorCodeValues, e)
}

func (e WebhookErrorCode) String() string { return string(e) }

func (e *WebhookErrorCode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "WebhookErrorCode")
}

type OrderStatus string

const (
	OrderStatusDraft              OrderStatus = "DRAFT"
	OrderStatusUnconfirmed        OrderStatus = "UNCONFIRMED"
	OrderStatusUnfulfilled        OrderStatus = "UNFULFILLED"
	OrderStatusPartiallyFulfilled OrderStatus = "PARTIALLY_FULFILLED"
	OrderStatusPartiallyReturned  OrderStatus = "PARTIALLY_RETURNED"
	OrderStatusReturned           OrderStatus = "RETURNED"
	OrderStatusFulfilled          OrderStatus = "FULFILLED"
	OrderStatusCanceled           OrderStatus = "CANCELED"
	OrderStatusExpired            OrderStatus = "EXPIRED"
)

var orderStatusValues = []OrderStatus{
	OrderStatusDraft,
	OrderStatusUnconfirmed,
	OrderStatusUnfulfilled,
	OrderStatusPartiallyFulfilled,
	OrderStatusPartiallyReturned,
	OrderStatusReturned,
	OrderStatusFulfilled,
	OrderStatusCanceled,
	OrderStatusExpired,
}

func (OrderStatus) Values() []OrderStatus {
	return slices.Clone(orderStatusValues)
}

func (e OrderStatus) IsValid() bool {
	return slices.Contains(orderStatusValues, e)
}

func (e OrderStatus) String() string { return string(e) }

func (e *OrderStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "OrderStatus")
}

type OrderOrigin string

const (
	OrderOriginCheckout OrderOrigin = "CHECKOUT"
	OrderOriginDraft    OrderOrigin = "DRAFT"
	OrderOriginReissue  OrderOrigin = "REISSUE"
)

var orderOriginValues = []OrderOrigin{
	OrderOriginCheckout,
	OrderOriginDraft,
	OrderOriginReissue,
}

func (OrderOrigin) Values() []OrderOrigin {
	return slices.Clone(orderOriginValues)
}

func (e OrderOrigin) IsValid() bool {
	return slices.Contains(orderOriginValues, e)
}

func (e OrderOrigin) String() string { return string(e) }

func (e *OrderOrigin) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "OrderOrigin")
}

type FulfillmentStatus string

const (
	FulfillmentStatusFulfilled           FulfillmentStatus = "FULFILLED"
	FulfillmentStatusRefunded            FulfillmentStatus = "REFUNDED"
	FulfillmentStatusReturned            FulfillmentStatus = "RETURNED"
	FulfillmentStatusRefundedAndReturned FulfillmentStatus = "REFUNDED_AND_RETURNED"
	FulfillmentStatusReplaced            FulfillmentStatus = "REPLACED"
	FulfillmentStatusCanceled            FulfillmentStatus = "CANCELED"
	FulfillmentStatusWaitingForApproval  FulfillmentStatus = "WAITING_FOR_APPROVAL"
)

var fulfillmentStatusValues = []FulfillmentStatus{
	FulfillmentStatusFulfilled,
	FulfillmentStatusRefunded,
	FulfillmentStatusReturned,
	FulfillmentStatusRefundedAndReturned,
	FulfillmentStatusReplaced,
	FulfillmentStatusCanceled,
	FulfillmentStatusWaitingForApproval,
}

func (FulfillmentStatus) Values() []FulfillmentStatus {
	return slices.Clone(fulfillmentStatusValues)
}

func (e FulfillmentStatus) IsValid() bool {
	return slices.Contains(fulfillmentStatusValues, e)
}

func (e FulfillmentStatus) String() string { return string(e) }

func (e *FulfillmentStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "FulfillmentStatus")
}

type PaymentChargeStatusEnum string

const (
	PaymentChargeStatusEnumNotCharged        PaymentChargeStatusEnum = "NOT_CHARGED"
	PaymentChargeStatusEnumPending           PaymentChargeStatusEnum = "PENDING"
	PaymentChargeStatusEnumPartiallyCharged  PaymentChargeStatusEnum = "PARTIALLY_CHARGED"
	PaymentChargeStatusEnumFullyCharged      PaymentChargeStatusEnum = "FULLY_CHARGED"
	PaymentChargeStatusEnumPartiallyRefunded PaymentChargeStatusEnum = "PARTIALLY_REFUNDED"
	PaymentChargeStatusEnumFullyRefunded     PaymentChargeStatusEnum = "FULLY_REFUNDED"
	PaymentChargeStatusEnumRefused           PaymentChargeStatusEnum = "REFUSED"
	PaymentChargeStatusEnumCancelled         PaymentChargeStatusEnum = "CANCELLED"
)

var paymentChargeStatusEnumValues = []PaymentChargeStatusEnum{
	PaymentChargeStatusEnumNotCharged,
	PaymentChargeStatusEnumPending,
	PaymentChargeStatusEnumPartiallyCharged,
	PaymentChargeStatusEnumFullyCharged,
	PaymentChargeStatusEnumPartiallyRefunded,
	PaymentChargeStatusEnumFullyRefunded,
	PaymentChargeStatusEnumRefused,
	PaymentChargeStatusEnumCancelled,
}

func (PaymentChargeStatusEnum) Values() []PaymentChargeStatusEnum {
	return slices.Clone(paymentChargeStatusEnumValues)
}

func (e PaymentChargeStatusEnum) IsValid() bool {
	return slices.Contains(paymentChargeStatusEnumValues, e)
}

func (e PaymentChargeStatusEnum) String() string { return string(e) }

func (e *PaymentChargeStatusEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "PaymentChargeStatusEnum")
}

// TransactionActionEnum is an action an app can be asked to perform on a transaction.
type TransactionActionEnum string

const (
	TransactionActionEnumCharge TransactionActionEnum = "CHARGE"
	TransactionActionEnumRefund TransactionActionEnum = "REFUND"
	TransactionActionEnumCancel TransactionActionEnum = "CANCEL"
)

var transactionActionEnumValues = []TransactionActionEnum{
	TransactionActionEnumCharge,
	TransactionActionEnumRefund,
	TransactionActionEnumCancel,
}

func (TransactionActionEnum) Values() []TransactionActionEnum {
	return slices.Clone(transactionActionEnumValues)
}

func (e TransactionActionEnum) IsValid() bool {
	return slices.Contains(transactionActionEnumValues, e)
}

func (e TransactionActionEnum) String() string { return string(e) }

func (e *TransactionActionEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "TransactionActionEnum")
}

type TransactionEventTypeEnum string

const (
	TransactionEventTypeEnumAuthorizationSuccess        TransactionEventTypeEnum = "AUTHORIZATION_SUCCESS"
	TransactionEventTypeEnumAuthorizationFailure        TransactionEventTypeEnum = "AUTHORIZATION_FAILURE"
	TransactionEventTypeEnumAuthorizationAdjustment     TransactionEventTypeEnum = "AUTHORIZATION_ADJUSTMENT"
	TransactionEventTypeEnumAuthorizationRequest        TransactionEventTypeEnum = "AUTHORIZATION_REQUEST"
	TransactionEventTypeEnumAuthorizationActionRequired TransactionEventTypeEnum = "AUTHORIZATION_ACTION_REQUIRED"
	TransactionEventTypeEnumChargeActionRequired        TransactionEventTypeEnum = "CHARGE_ACTION_REQUIRED"
	TransactionEventTypeEnumChargeSuccess               TransactionEventTypeEnum = "CHARGE_SUCCESS"
	TransactionEventTypeEnumChargeFailure               TransactionEventTypeEnum = "CHARGE_FAILURE"
	TransactionEventTypeEnumChargeBack                  TransactionEventTypeEnum = "CHARGE_BACK"
	TransactionEventTypeEnumChargeRequest               TransactionEventTypeEnum = "CHARGE_REQUEST"
	TransactionEventTypeEnumRefundSuccess               TransactionEventTypeEnum = "REFUND_SUCCESS"
	TransactionEventTypeEnumRefundFailure               TransactionEventTypeEnum = "REFUND_FAILURE"
	TransactionEventTypeEnumRefundReverse               TransactionEventTypeEnum = "REFUND_REVERSE"
	TransactionEventTypeEnumRefundRequest               TransactionEventTypeEnum = "REFUND_REQUEST"
	TransactionEventTypeEnumCancelSuccess               TransactionEventTypeEnum = "CANCEL_SUCCESS"
	TransactionEventTypeEnumCancelFailure               TransactionEventTypeEnum = "CANCEL_FAILURE"
	TransactionEventTypeEnumCancelRequest               TransactionEventTypeEnum = "CANCEL_REQUEST"
	TransactionEventTypeEnumInfo                        TransactionEventTypeEnum = "INFO"
)

var transactionEventTypeEnumValues = []TransactionEventTypeEnum{
	TransactionEventTypeEnumAuthorizationSuccess,
	TransactionEventTypeEnumAuthorizationFailure,
	TransactionEventTypeEnumAuthorizationAdjustment,
	TransactionEventTypeEnumAuthorizationRequest,
	TransactionEventTypeEnumAuthorizationActionRequired,
	TransactionEventTypeEnumChargeActionRequired,
	TransactionEventTypeEnumChargeSuccess,
	TransactionEventTypeEnumChargeFailure,
	TransactionEventTypeEnumChargeBack,
	TransactionEventTypeEnumChargeRequest,
	TransactionEventTypeEnumRefundSuccess,
	TransactionEventTypeEnumRefundFailure,
	TransactionEventTypeEnumRefundReverse,
	TransactionEventTypeEnumRefundRequest,
	TransactionEventTypeEnumCancelSuccess,
	TransactionEventTypeEnumCancelFailure,
	TransactionEventTypeEnumCancelRequest,
	TransactionEventTypeEnumInfo,
}

func (TransactionEventTypeEnum) Values() []TransactionEventTypeEnum {
	return slices.Clone(transactionEventTypeEnumValues)
}

func (e TransactionEventTypeEnum) IsValid() bool {
	return slices.Contains(transactionEventTypeEnumValues, e)
}

func (e TransactionEventTypeEnum) String() string { return string(e) }

func (e *TransactionEventTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "TransactionEventTypeEnum")
}

type StockAvailability string

const (
	StockAvailabilityInStock    StockAvailability = "IN_STOCK"
	StockAvailabilityOutOfStock StockAvailability = "OUT_OF_STOCK"
)

var stockAvailabilityValues = []StockAvailability{
	StockAvailabilityInStock,
	StockAvailabilityOutOfStock,
}

func (StockAvailability) Values() []StockAvailability {
	return slices.Clone(stockAvailabilityValues)
}

func (e StockAvailability) IsValid() bool {
	return slices.Contains(stockAvailabilityValues, e)
}

func (e StockAvailability) String() string { return string(e) }

func (e *StockAvailability) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "StockAvailability")
}

type ProductTypeKindEnum string

const (
	ProductTypeKindEnumNormal   ProductTypeKindEnum = "NORMAL"
	ProductTypeKindEnumGiftCard ProductTypeKindEnum = "GIFT_CARD"
)

var productTypeKindEnumValues = []ProductTypeKindEnum{
	ProductTypeKindEnumNormal,
	ProductTypeKindEnumGiftCard,
}

func (ProductTypeKindEnum) Values() []ProductTypeKindEnum {
	return slices.Clone(productTypeKindEnumValues)
}

func (e ProductTypeKindEnum) IsValid() bool {
	return slices.Contains(productTypeKindEnumValues, e)
}

func (e ProductTypeKindEnum) String() string { return string(e) }

func (e *ProductTypeKindEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "ProductTypeKindEnum")
}

type AttributeInputTypeEnum string

const (
	AttributeInputTypeEnumDropdown    AttributeInputTypeEnum = "DROPDOWN"
	AttributeInputTypeEnumMultiselect AttributeInputTypeEnum = "MULTISELECT"
	AttributeInputTypeEnumFile        AttributeInputTypeEnum = "FILE"
	AttributeInputTypeEnumReference   AttributeInputTypeEnum = "REFERENCE"
	AttributeInputTypeEnumNumeric     AttributeInputTypeEnum = "NUMERIC"
	AttributeInputTypeEnumRichText    AttributeInputTypeEnum = "RICH_TEXT"
	AttributeInputTypeEnumPlainText   AttributeInputTypeEnum = "PLAIN_TEXT"
	AttributeInputTypeEnumSwatch      AttributeInputTypeEnum = "SWATCH"
	AttributeInputTypeEnumBoolean     AttributeInputTypeEnum = "BOOLEAN"
	AttributeInputTypeEnumDate        AttributeInputTypeEnum = "DATE"
	AttributeInputTypeEnumDateTime    AttributeInputTypeEnum = "DATE_TIME"
)

var attributeInputTypeEnumValues = []AttributeInputTypeEnum{
	AttributeInputTypeEnumDropdown,
	AttributeInputTypeEnumMultiselect,
	AttributeInputTypeEnumFile,
	AttributeInputTypeEnumReference,
	AttributeInputTypeEnumNumeric,
	AttributeInputTypeEnumRichText,
	AttributeInputTypeEnumPlainText,
	AttributeInputTypeEnumSwatch,
	AttributeInputTypeEnumBoolean,
	AttributeInputTypeEnumDate,
	AttributeInputTypeEnumDateTime,
}

func (AttributeInputTypeEnum) Values() []AttributeInputTypeEnum {
	return slices.Clone(attributeInputTypeEnumValues)
}

func (e AttributeInputTypeEnum) IsValid() bool {
	return slices.Contains(attributeInputTypeEnumValues, e)
}

func (e AttributeInputTypeEnum) String() string { return string(e) }

func (e *AttributeInputTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "AttributeInputTypeEnum")
}

type AttributeTypeEnum string

const (
	AttributeTypeEnumProductType AttributeTypeEnum = "PRODUCT_TYPE"
	AttributeTypeEnumPageType    AttributeTypeEnum = "PAGE_TYPE"
)

var attributeTypeEnumValues = []AttributeTypeEnum{
	AttributeTypeEnumProductType,
	AttributeTypeEnumPageType,
}

func (AttributeTypeEnum) Values() []AttributeTypeEnum {
	return slices.Clone(attributeTypeEnumValues)
}

func (e AttributeTypeEnum) IsValid() bool {
	return slices.Contains(attributeTypeEnumValues, e)
}

func (e AttributeTypeEnum) String() string { return string(e) }

func (e *AttributeTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "AttributeTypeEnum")
}

type DiscountValueTypeEnum string

const (
	DiscountValueTypeEnumFixed      DiscountValueTypeEnum = "FIXED"
	DiscountValueTypeEnumPercentage DiscountValueTypeEnum = "PERCENTAGE"
)

var discountValueTypeEnumValues = []DiscountValueTypeEnum{
	DiscountValueTypeEnumFixed,
	DiscountValueTypeEnumPercentage,
}

func (DiscountValueTypeEnum) Values() []DiscountValueTypeEnum {
	return slices.Clone(discountValueTypeEnumValues)
}

func (e DiscountValueTypeEnum) IsValid() bool {
	return slices.Contains(discountValueTypeEnumValues, e)
}

func (e DiscountValueTypeEnum) String() string { return string(e) }

func (e *DiscountValueTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "DiscountValueTypeEnum")
}

type VoucherTypeEnum string

const (
	VoucherTypeEnumShipping        VoucherTypeEnum = "SHIPPING"
	VoucherTypeEnumEntireOrder     VoucherTypeEnum = "ENTIRE_ORDER"
	VoucherTypeEnumSpecificProduct VoucherTypeEnum = "SPECIFIC_PRODUCT"
)

var voucherTypeEnumValues = []VoucherTypeEnum{
	VoucherTypeEnumShipping,
	VoucherTypeEnumEntireOrder,
	VoucherTypeEnumSpecificProduct,
}

func (VoucherTypeEnum) Values() []VoucherTypeEnum {
	return slices.Clone(voucherTypeEnumValues)
}

func (e VoucherTypeEnum) IsValid() bool {
	return slices.Contains(voucherTypeEnumValues, e)
}

func (e VoucherTypeEnum) String() string { return string(e) }

func (e *VoucherTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "VoucherTypeEnum")
}

type SaleType string

const (
	SaleTypeFixed      SaleType = "FIXED"
	SaleTypePercentage SaleType = "PERCENTAGE"
)

var saleTypeValues = []SaleType{
	SaleTypeFixed,
	SaleTypePercentage,
}

func (SaleType) Values() []SaleType {
	return slices.Clone(saleTypeValues)
}

func (e SaleType) IsValid() bool {
	return slices.Contains(saleTypeValues, e)
}

func (e SaleType) String() string { return string(e) }

func (e *SaleType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "SaleType")
}

type ShippingMethodTypeEnum string

const (
	ShippingMethodTypeEnumPrice  ShippingMethodTypeEnum = "PRICE"
	ShippingMethodTypeEnumWeight ShippingMethodTypeEnum = "WEIGHT"
)

var shippingMethodTypeEnumValues = []ShippingMethodTypeEnum{
	ShippingMethodTypeEnumPrice,
	ShippingMethodTypeEnumWeight,
}

func (ShippingMethodTypeEnum) Values() []ShippingMethodTypeEnum {
	return slices.Clone(shippingMethodTypeEnumValues)
}

func (e ShippingMethodTypeEnum) IsValid() bool {
	return slices.Contains(shippingMethodTypeEnumValues, e)
}

func (e ShippingMethodTypeEnum) String() string { return string(e) }

func (e *ShippingMethodTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "ShippingMethodTypeEnum")
}

type WeightUnitsEnum string

const (
	WeightUnitsEnumG     WeightUnitsEnum = "G"
	WeightUnitsEnumLb    WeightUnitsEnum = "LB"
	WeightUnitsEnumOz    WeightUnitsEnum = "OZ"
	WeightUnitsEnumKg    WeightUnitsEnum = "KG"
	WeightUnitsEnumTonne WeightUnitsEnum = "TONNE"
)

var weightUnitsEnumValues = []WeightUnitsEnum{
	WeightUnitsEnumG,
	WeightUnitsEnumLb,
	WeightUnitsEnumOz,
	WeightUnitsEnumKg,
	WeightUnitsEnumTonne,
}

func (WeightUnitsEnum) Values() []WeightUnitsEnum {
	return slices.Clone(weightUnitsEnumValues)
}

func (e WeightUnitsEnum) IsValid() bool {
	return slices.Contains(weightUnitsEnumValues, e)
}

func (e WeightUnitsEnum) String() string { return string(e) }

func (e *WeightUnitsEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "WeightUnitsEnum")
}

// WebhookEventTypeAsyncEnum lists the events delivered to asynchronous webhooks.
type WebhookEventTypeAsyncEnum string

const (
	WebhookEventTypeAsyncEnumAnyEvents                      WebhookEventTypeAsyncEnum = "ANY_EVENTS"
	WebhookEventTypeAsyncEnumAppInstalled                   WebhookEventTypeAsyncEnum = "APP_INSTALLED"
	WebhookEventTypeAsyncEnumAppUpdated                     WebhookEventTypeAsyncEnum = "APP_UPDATED"
	WebhookEventTypeAsyncEnumAppDeleted                     WebhookEventTypeAsyncEnum = "APP_DELETED"
	WebhookEventTypeAsyncEnumCategoryCreated                WebhookEventTypeAsyncEnum = "CATEGORY_CREATED"
	WebhookEventTypeAsyncEnumCategoryUpdated                WebhookEventTypeAsyncEnum = "CATEGORY_UPDATED"
	WebhookEventTypeAsyncEnumCategoryDeleted                WebhookEventTypeAsyncEnum = "CATEGORY_DELETED"
	WebhookEventTypeAsyncEnumCheckoutCreated                WebhookEventTypeAsyncEnum = "CHECKOUT_CREATED"
	WebhookEventTypeAsyncEnumCheckoutUpdated                WebhookEventTypeAsyncEnum = "CHECKOUT_UPDATED"
	WebhookEventTypeAsyncEnumCheckoutFullyPaid              WebhookEventTypeAsyncEnum = "CHECKOUT_FULLY_PAID"
	WebhookEventTypeAsyncEnumCustomerCreated                WebhookEventTypeAsyncEnum = "CUSTOMER_CREATED"
	WebhookEventTypeAsyncEnumCustomerUpdated                WebhookEventTypeAsyncEnum = "CUSTOMER_UPDATED"
	WebhookEventTypeAsyncEnumCustomerDeleted                WebhookEventTypeAsyncEnum = "CUSTOMER_DELETED"
	WebhookEventTypeAsyncEnumFulfillmentCreated             WebhookEventTypeAsyncEnum = "FULFILLMENT_CREATED"
	WebhookEventTypeAsyncEnumFulfillmentCanceled            WebhookEventTypeAsyncEnum = "FULFILLMENT_CANCELED"
	WebhookEventTypeAsyncEnumGiftCardCreated                WebhookEventTypeAsyncEnum = "GIFT_CARD_CREATED"
	WebhookEventTypeAsyncEnumGiftCardUpdated                WebhookEventTypeAsyncEnum = "GIFT_CARD_UPDATED"
	WebhookEventTypeAsyncEnumGiftCardDeleted                WebhookEventTypeAsyncEnum = "GIFT_CARD_DELETED"
	WebhookEventTypeAsyncEnumInvoiceRequested               WebhookEventTypeAsyncEnum = "INVOICE_REQUESTED"
	WebhookEventTypeAsyncEnumInvoiceDeleted                 WebhookEventTypeAsyncEnum = "INVOICE_DELETED"
	WebhookEventTypeAsyncEnumInvoiceSent                    WebhookEventTypeAsyncEnum = "INVOICE_SENT"
	WebhookEventTypeAsyncEnumOrderCreated                   WebhookEventTypeAsyncEnum = "ORDER_CREATED"
	WebhookEventTypeAsyncEnumOrderConfirmed                 WebhookEventTypeAsyncEnum = "ORDER_CONFIRMED"
	WebhookEventTypeAsyncEnumOrderPaid                      WebhookEventTypeAsyncEnum = "ORDER_PAID"
	WebhookEventTypeAsyncEnumOrderFullyPaid                 WebhookEventTypeAsyncEnum = "ORDER_FULLY_PAID"
	WebhookEventTypeAsyncEnumOrderUpdated                   WebhookEventTypeAsyncEnum = "ORDER_UPDATED"
	WebhookEventTypeAsyncEnumOrderCancelled                 WebhookEventTypeAsyncEnum = "ORDER_CANCELLED"
	WebhookEventTypeAsyncEnumOrderExpired                   WebhookEventTypeAsyncEnum = "ORDER_EXPIRED"
	WebhookEventTypeAsyncEnumOrderFulfilled                 WebhookEventTypeAsyncEnum = "ORDER_FULFILLED"
	WebhookEventTypeAsyncEnumPageCreated                    WebhookEventTypeAsyncEnum = "PAGE_CREATED"
	WebhookEventTypeAsyncEnumPageUpdated                    WebhookEventTypeAsyncEnum = "PAGE_UPDATED"
	WebhookEventTypeAsyncEnumPageDeleted                    WebhookEventTypeAsyncEnum = "PAGE_DELETED"
	WebhookEventTypeAsyncEnumProductCreated                 WebhookEventTypeAsyncEnum = "PRODUCT_CREATED"
	WebhookEventTypeAsyncEnumProductUpdated                 WebhookEventTypeAsyncEnum = "PRODUCT_UPDATED"
	WebhookEventTypeAsyncEnumProductDeleted                 WebhookEventTypeAsyncEnum = "PRODUCT_DELETED"
	WebhookEventTypeAsyncEnumProductVariantCreated          WebhookEventTypeAsyncEnum = "PRODUCT_VARIANT_CREATED"
	WebhookEventTypeAsyncEnumProductVariantUpdated          WebhookEventTypeAsyncEnum = "PRODUCT_VARIANT_UPDATED"
	WebhookEventTypeAsyncEnumProductVariantDeleted          WebhookEventTypeAsyncEnum = "PRODUCT_VARIANT_DELETED"
	WebhookEventTypeAsyncEnumProductVariantOutOfStock       WebhookEventTypeAsyncEnum = "PRODUCT_VARIANT_OUT_OF_STOCK"
	WebhookEventTypeAsyncEnumProductVariantBackInStock      WebhookEventTypeAsyncEnum = "PRODUCT_VARIANT_BACK_IN_STOCK"
	WebhookEventTypeAsyncEnumSaleCreated                    WebhookEventTypeAsyncEnum = "SALE_CREATED"
	WebhookEventTypeAsyncEnumSaleUpdated                    WebhookEventTypeAsyncEnum = "SALE_UPDATED"
	WebhookEventTypeAsyncEnumSaleDeleted                    WebhookEventTypeAsyncEnum = "SALE_DELETED"
	WebhookEventTypeAsyncEnumStaffCreated                   WebhookEventTypeAsyncEnum = "STAFF_CREATED"
	WebhookEventTypeAsyncEnumStaffUpdated                   WebhookEventTypeAsyncEnum = "STAFF_UPDATED"
	WebhookEventTypeAsyncEnumStaffDeleted                   WebhookEventTypeAsyncEnum = "STAFF_DELETED"
	WebhookEventTypeAsyncEnumTransactionItemMetadataUpdated WebhookEventTypeAsyncEnum = "TRANSACTION_ITEM_METADATA_UPDATED"
	WebhookEventTypeAsyncEnumVoucherCreated                 WebhookEventTypeAsyncEnum = "VOUCHER_CREATED"
	WebhookEventTypeAsyncEnumVoucherUpdated                 WebhookEventTypeAsyncEnum = "VOUCHER_UPDATED"
	WebhookEventTypeAsyncEnumVoucherDeleted                 WebhookEventTypeAsyncEnum = "VOUCHER_DELETED"
	WebhookEventTypeAsyncEnumWarehouseCreated               WebhookEventTypeAsyncEnum = "WAREHOUSE_CREATED"
	WebhookEventTypeAsyncEnumWarehouseUpdated               WebhookEventTypeAsyncEnum = "WAREHOUSE_UPDATED"
	WebhookEventTypeAsyncEnumWarehouseDeleted               WebhookEventTypeAsyncEnum = "WAREHOUSE_DELETED"
	WebhookEventTypeAsyncEnumNotifyUser                     WebhookEventTypeAsyncEnum = "NOTIFY_USER"
	WebhookEventTypeAsyncEnumObservability                  WebhookEventTypeAsyncEnum = "OBSERVABILITY"
)

var webhookEventTypeAsyncEnumValues = []WebhookEventTypeAsyncEnum{
	WebhookEventTypeAsyncEnumAnyEvents,
	WebhookEventTypeAsyncEnumAppInstalled,
	WebhookEventTypeAsyncEnumAppUpdated,
	WebhookEventTypeAsyncEnumAppDeleted,
	WebhookEventTypeAsyncEnumCategoryCreated,
	WebhookEventTypeAsyncEnumCategoryUpdated,
	WebhookEventTypeAsyncEnumCategoryDeleted,
	WebhookEventTypeAsyncEnumCheckoutCreated,
	WebhookEventTypeAsyncEnumCheckoutUpdated,
	WebhookEventTypeAsyncEnumCheckoutFullyPaid,
	WebhookEventTypeAsyncEnumCustomerCreated,
	WebhookEventTypeAsyncEnumCustomerUpdated,
	WebhookEventTypeAsyncEnumCustomerDeleted,
	WebhookEventTypeAsyncEnumFulfillmentCreated,
	WebhookEventTypeAsyncEnumFulfillmentCanceled,
	WebhookEventTypeAsyncEnumGiftCardCreated,
	WebhookEventTypeAsyncEnumGiftCardUpdated,
	WebhookEventTypeAsyncEnumGiftCardDeleted,
	WebhookEventTypeAsyncEnumInvoiceRequested,
	WebhookEventTypeAsyncEnumInvoiceDeleted,
	WebhookEventTypeAsyncEnumInvoiceSent,
	WebhookEventTypeAsyncEnumOrderCreated,
	WebhookEventTypeAsyncEnumOrderConfirmed,
	WebhookEventTypeAsyncEnumOrderPaid,
	WebhookEventTypeAsyncEnumOrderFullyPaid,
	WebhookEventTypeAsyncEnumOrderUpdated,
	WebhookEventTypeAsyncEnumOrderCancelled,
	WebhookEventTypeAsyncEnumOrderExpired,
	WebhookEventTypeAsyncEnumOrderFulfilled,
	WebhookEventTypeAsyncEnumPageCreated,
	WebhookEventTypeAsyncEnumPageUpdated,
	WebhookEventTypeAsyncEnumPageDeleted,
	WebhookEventTypeAsyncEnumProductCreated,
	WebhookEventTypeAsyncEnumProductUpdated,
	WebhookEventTypeAsyncEnumProductDeleted,
	WebhookEventTypeAsyncEnumProductVariantCreated,
	WebhookEventTypeAsyncEnumProductVariantUpdated,
	WebhookEventTypeAsyncEnumProductVariantDeleted,
	WebhookEventTypeAsyncEnumProductVariantOutOfStock,
	WebhookEventTypeAsyncEnumProductVariantBackInStock,
	WebhookEventTypeAsyncEnumSaleCreated,
	WebhookEventTypeAsyncEnumSaleUpdated,
	WebhookEventTypeAsyncEnumSaleDeleted,
	WebhookEventTypeAsyncEnumStaffCreated,
	WebhookEventTypeAsyncEnumStaffUpdated,
	WebhookEventTypeAsyncEnumStaffDeleted,
	WebhookEventTypeAsyncEnumTransactionItemMetadataUpdated,
	WebhookEventTypeAsyncEnumVoucherCreated,
	WebhookEventTypeAsyncEnumVoucherUpdated,
	WebhookEventTypeAsyncEnumVoucherDeleted,
	WebhookEventTypeAsyncEnumWarehouseCreated,
	WebhookEventTypeAsyncEnumWarehouseUpdated,
	WebhookEventTypeAsyncEnumWarehouseDeleted,
	WebhookEventTypeAsyncEnumNotifyUser,
	WebhookEventTypeAsyncEnumObservability,
}

func (WebhookEventTypeAsyncEnum) Values() []WebhookEventTypeAsyncEnum {
	return slices.Clone(webhookEventTypeAsyncEnumValues)
}

func (e WebhookEventTypeAsyncEnum) IsValid() bool {
	return slices.Contains(webhookEventTypeAsyncEnumValues, e)
}

func (e WebhookEventTypeAsyncEnum) String() string { return string(e) }

func (e *WebhookEventTypeAsyncEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "WebhookEventTypeAsyncEnum")
}

// WebhookEventTypeSyncEnum lists the events that call a webhook synchronously and wait for its answer.
type WebhookEventTypeSyncEnum string

const (
	WebhookEventTypeSyncEnumCheckoutCalculateTaxes          WebhookEventTypeSyncEnum = "CHECKOUT_CALCULATE_TAXES"
	WebhookEventTypeSyncEnumOrderCalculateTaxes             WebhookEventTypeSyncEnum = "ORDER_CALCULATE_TAXES"
	WebhookEventTypeSyncEnumShippingListMethodsForCheckout  WebhookEventTypeSyncEnum = "SHIPPING_LIST_METHODS_FOR_CHECKOUT"
	WebhookEventTypeSyncEnumCheckoutFilterShippingMethods   WebhookEventTypeSyncEnum = "CHECKOUT_FILTER_SHIPPING_METHODS"
	WebhookEventTypeSyncEnumOrderFilterShippingMethods      WebhookEventTypeSyncEnum = "ORDER_FILTER_SHIPPING_METHODS"
	WebhookEventTypeSyncEnumPaymentListGateways             WebhookEventTypeSyncEnum = "PAYMENT_LIST_GATEWAYS"
	WebhookEventTypeSyncEnumPaymentAuthorize                WebhookEventTypeSyncEnum = "PAYMENT_AUTHORIZE"
	WebhookEventTypeSyncEnumPaymentCapture                  WebhookEventTypeSyncEnum = "PAYMENT_CAPTURE"
	WebhookEventTypeSyncEnumPaymentRefund                   WebhookEventTypeSyncEnum = "PAYMENT_REFUND"
	WebhookEventTypeSyncEnumPaymentVoid                     WebhookEventTypeSyncEnum = "PAYMENT_VOID"
	WebhookEventTypeSyncEnumPaymentConfirm                  WebhookEventTypeSyncEnum = "PAYMENT_CONFIRM"
	WebhookEventTypeSyncEnumPaymentProcess                  WebhookEventTypeSyncEnum = "PAYMENT_PROCESS"
	WebhookEventTypeSyncEnumTransactionChargeRequested      WebhookEventTypeSyncEnum = "TRANSACTION_CHARGE_REQUESTED"
	WebhookEventTypeSyncEnumTransactionRefundRequested      WebhookEventTypeSyncEnum = "TRANSACTION_REFUND_REQUESTED"
	WebhookEventTypeSyncEnumTransactionCancelationRequested WebhookEventTypeSyncEnum = "TRANSACTION_CANCELATION_REQUESTED"
	WebhookEventTypeSyncEnumPaymentGatewayInitializeSession WebhookEventTypeSyncEnum = "PAYMENT_GATEWAY_INITIALIZE_SESSION"
	WebhookEventTypeSyncEnumTransactionInitializeSession    WebhookEventTypeSyncEnum = "TRANSACTION_INITIALIZE_SESSION"
	WebhookEventTypeSyncEnumTransactionProcessSession       WebhookEventTypeSyncEnum = "TRANSACTION_PROCESS_SESSION"
)

var webhookEventTypeSyncEnumValues = []WebhookEventTypeSyncEnum{
	WebhookEventTypeSyncEnumCheckoutCalculateTaxes,
	WebhookEventTypeSyncEnumOrderCalculateTaxes,
	WebhookEventTypeSyncEnumShippingListMethodsForCheckout,
	WebhookEventTypeSyncEnumCheckoutFilterShippingMethods,
	WebhookEventTypeSyncEnumOrderFilterShippingMethods,
	WebhookEventTypeSyncEnumPaymentListGateways,
	WebhookEventTypeSyncEnumPaymentAuthorize,
	WebhookEventTypeSyncEnumPaymentCapture,
	WebhookEventTypeSyncEnumPaymentRefund,
	WebhookEventTypeSyncEnumPaymentVoid,
	WebhookEventTypeSyncEnumPaymentConfirm,
	WebhookEventTypeSyncEnumPaymentProcess,
	WebhookEventTypeSyncEnumTransactionChargeRequested,
	WebhookEventTypeSyncEnumTransactionRefundRequested,
	WebhookEventTypeSyncEnumTransactionCancelationRequested,
	WebhookEventTypeSyncEnumPaymentGatewayInitializeSession,
	WebhookEventTypeSyncEnumTransactionInitializeSession,
	WebhookEventTypeSyncEnumTransactionProcessSession,
}

func (WebhookEventTypeSyncEnum) Values() []WebhookEventTypeSyncEnum {
	return slices.Clone(webhookEventTypeSyncEnumValues)
}

func (e WebhookEventTypeSyncEnum) IsValid() bool {
	return slices.Contains(webhookEventTypeSyncEnumValues, e)
}

func (e WebhookEventTypeSyncEnum) String() string { return string(e) }

func (e *WebhookEventTypeSyncEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "WebhookEventTypeSyncEnum")
}

// PermissionEnum names a permission granted to staff users, groups and apps.
type PermissionEnum string

const (
	PermissionEnumManageUsers                     PermissionEnum = "MANAGE_USERS"
	PermissionEnumManageStaff                     PermissionEnum = "MANAGE_STAFF"
	PermissionEnumImpersonateUser                 PermissionEnum = "IMPERSONATE_USER"
	PermissionEnumManageApps                      PermissionEnum = "MANAGE_APPS"
	PermissionEnumManageObservability             PermissionEnum = "MANAGE_OBSERVABILITY"
	PermissionEnumManageCheckouts                 PermissionEnum = "MANAGE_CHECKOUTS"
	PermissionEnumHandleCheckouts                 PermissionEnum = "HANDLE_CHECKOUTS"
	PermissionEnumHandleTaxes                     PermissionEnum = "HANDLE_TAXES"
	PermissionEnumManageTaxes                     PermissionEnum = "MANAGE_TAXES"
	PermissionEnumManageChannels                  PermissionEnum = "MANAGE_CHANNELS"
	PermissionEnumManageDiscounts                 PermissionEnum = "MANAGE_DISCOUNTS"
	PermissionEnumManageGiftCard                  PermissionEnum = "MANAGE_GIFT_CARD"
	PermissionEnumManageMenus                     PermissionEnum = "MANAGE_MENUS"
	PermissionEnumManageOrders                    PermissionEnum = "MANAGE_ORDERS"
	PermissionEnumManageOrdersImport              PermissionEnum = "MANAGE_ORDERS_IMPORT"
	PermissionEnumManagePages                     PermissionEnum = "MANAGE_PAGES"
	PermissionEnumManagePageTypesAndAttributes    PermissionEnum = "MANAGE_PAGE_TYPES_AND_ATTRIBUTES"
	PermissionEnumHandlePayments                  PermissionEnum = "HANDLE_PAYMENTS"
	PermissionEnumManagePlugins                   PermissionEnum = "MANAGE_PLUGINS"
	PermissionEnumManageProducts                  PermissionEnum = "MANAGE_PRODUCTS"
	PermissionEnumManageProductTypesAndAttributes PermissionEnum = "MANAGE_PRODUCT_TYPES_AND_ATTRIBUTES"
	PermissionEnumManageShipping                  PermissionEnum = "MANAGE_SHIPPING"
	PermissionEnumManageSettings                  PermissionEnum = "MANAGE_SETTINGS"
	PermissionEnumManageTranslations              PermissionEnum = "MANAGE_TRANSLATIONS"
)

var permissionEnumValues = []PermissionEnum{
	PermissionEnumManageUsers,
	PermissionEnumManageStaff,
	PermissionEnumImpersonateUser,
	PermissionEnumManageApps,
	PermissionEnumManageObservability,
	PermissionEnumManageCheckouts,
	PermissionEnumHandleCheckouts,
	PermissionEnumHandleTaxes,
	PermissionEnumManageTaxes,
	PermissionEnumManageChannels,
	PermissionEnumManageDiscounts,
	PermissionEnumManageGiftCard,
	PermissionEnumManageMenus,
	PermissionEnumManageOrders,
	PermissionEnumManageOrdersImport,
	PermissionEnumManagePages,
	PermissionEnumManagePageTypesAndAttributes,
	PermissionEnumHandlePayments,
	PermissionEnumManagePlugins,
	PermissionEnumManageProducts,
	PermissionEnumManageProductTypesAndAttributes,
	PermissionEnumManageShipping,
	PermissionEnumManageSettings,
	PermissionEnumManageTranslations,
}

func (PermissionEnum) Values() []PermissionEnum {
	return slices.Clone(permissionEnumValues)
}

func (e PermissionEnum) IsValid() bool {
	return slices.Contains(permissionEnumValues, e)
}

func (e PermissionEnum) String() string { return string(e) }

func (e *PermissionEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "PermissionEnum")
}

type AppTypeEnum string

const (
	AppTypeEnumLocal      AppTypeEnum = "LOCAL"
	AppTypeEnumThirdparty AppTypeEnum = "THIRDPARTY"
)

var appTypeEnumValues = []AppTypeEnum{
	AppTypeEnumLocal,
	AppTypeEnumThirdparty,
}

func (AppTypeEnum) Values() []AppTypeEnum {
	return slices.Clone(appTypeEnumValues)
}

func (e AppTypeEnum) IsValid() bool {
	return slices.Contains(appTypeEnumValues, e)
}

func (e AppTypeEnum) String() string { return string(e) }

func (e *AppTypeEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "AppTypeEnum")
}

type JobStatusEnum string

const (
	JobStatusEnumPending JobStatusEnum = "PENDING"
	JobStatusEnumSuccess JobStatusEnum = "SUCCESS"
	JobStatusEnumFailed  JobStatusEnum = "FAILED"
	JobStatusEnumDeleted JobStatusEnum = "DELETED"
)

var jobStatusEnumValues = []JobStatusEnum{
	JobStatusEnumPending,
	JobStatusEnumSuccess,
	JobStatusEnumFailed,
	JobStatusEnumDeleted,
}

func (JobStatusEnum) Values() []JobStatusEnum {
	return slices.Clone(jobStatusEnumValues)
}

func (e JobStatusEnum) IsValid() bool {
	return slices.Contains(jobStatusEnumValues, e)
}

func (e JobStatusEnum) String() string { return string(e) }

func (e *JobStatusEnum) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "JobStatusEnum")
}

type TaxCalculationStrategy string

const (
	TaxCalculationStrategyFlatRates TaxCalculationStrategy = "FLAT_RATES"
	TaxCalculationStrategyTaxApp    TaxCalculationStrategy = "TAX_APP"
)

var taxCalculationStrategyValues = []TaxCalculationStrategy{
	TaxCalculationStrategyFlatRates,
	TaxCalculationStrategyTaxApp,
}

func (TaxCalculationStrategy) Values() []TaxCalculationStrategy {
	return slices.Clone(taxCalculationStrategyValues)
}

func (e TaxCalculationStrategy) IsValid() bool {
	return slices.Contains(taxCalculationStrategyValues, e)
}

func (e TaxCalculationStrategy) String() string { return string(e) }

func (e *TaxCalculationStrategy) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "TaxCalculationStrategy")
}

type OrderDirection string

const (
	OrderDirectionAsc  OrderDirection = "ASC"
	OrderDirectionDesc OrderDirection = "DESC"
)

var orderDirectionValues = []OrderDirection{
	OrderDirectionAsc,
	OrderDirectionDesc,
}

func (OrderDirection) Values() []OrderDirection {
	return slices.Clone(orderDirectionValues)
}

func (e OrderDirection) IsValid() bool {
	return slices.Contains(orderDirectionValues, e)
}

func (e OrderDirection) String() string { return string(e) }

func (e *OrderDirection) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "OrderDirection")
}

// ProductOrderField is the field products are sorted by.
type ProductOrderField string

const (
	ProductOrderFieldName            ProductOrderField = "NAME"
	ProductOrderFieldRank            ProductOrderField = "RANK"
	ProductOrderFieldPrice           ProductOrderField = "PRICE"
	ProductOrderFieldMinimalPrice    ProductOrderField = "MINIMAL_PRICE"
	ProductOrderFieldLastModified    ProductOrderField = "LAST_MODIFIED"
	ProductOrderFieldDate            ProductOrderField = "DATE"
	ProductOrderFieldType            ProductOrderField = "TYPE"
	ProductOrderFieldPublished       ProductOrderField = "PUBLISHED"
	ProductOrderFieldPublicationDate ProductOrderField = "PUBLICATION_DATE"
	ProductOrderFieldPublishedAt     ProductOrderField = "PUBLISHED_AT"
	ProductOrderFieldLastModifiedAt  ProductOrderField = "LAST_MODIFIED_AT"
	ProductOrderFieldCollection      ProductOrderField = "COLLECTION"
	ProductOrderFieldRating          ProductOrderField = "RATING"
	ProductOrderFieldCreatedAt       ProductOrderField = "CREATED_AT"
)

var productOrderFieldValues = []ProductOrderField{
	ProductOrderFieldName,
	ProductOrderFieldRank,
	ProductOrderFieldPrice,
	ProductOrderFieldMinimalPrice,
	ProductOrderFieldLastModified,
	ProductOrderFieldDate,
	ProductOrderFieldType,
	ProductOrderFieldPublished,
	ProductOrderFieldPublicationDate,
	ProductOrderFieldPublishedAt,
	ProductOrderFieldLastModifiedAt,
	ProductOrderFieldCollection,
	ProductOrderFieldRating,
	ProductOrderFieldCreatedAt,
}

func (ProductOrderField) Values() []ProductOrderField {
	return slices.Clone(productOrderFieldValues)
}

func (e ProductOrderField) IsValid() bool {
	return slices.Contains(productOrderFieldValues, e)
}

func (e ProductOrderField) String() string { return string(e) }

func (e *ProductOrderField) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "ProductOrderField")
}

// OrderSortField is the field orders are sorted by.
type OrderSortField string

const (
	OrderSortFieldNumber            OrderSortField = "NUMBER"
	OrderSortFieldRank              OrderSortField = "RANK"
	OrderSortFieldCreationDate      OrderSortField = "CREATION_DATE"
	OrderSortFieldCreatedAt         OrderSortField = "CREATED_AT"
	OrderSortFieldLastModifiedAt    OrderSortField = "LAST_MODIFIED_AT"
	OrderSortFieldCustomer          OrderSortField = "CUSTOMER"
	OrderSortFieldPayment           OrderSortField = "PAYMENT"
	OrderSortFieldFulfillmentStatus OrderSortField = "FULFILLMENT_STATUS"
)

var orderSortFieldValues = []OrderSortField{
	OrderSortFieldNumber,
	OrderSortFieldRank,
	OrderSortFieldCreationDate,
	OrderSortFieldCreatedAt,
	OrderSortFieldLastModifiedAt,
	OrderSortFieldCustomer,
	OrderSortFieldPayment,
	OrderSortFieldFulfillmentStatus,
}

func (OrderSortField) Values() []OrderSortField {
	return slices.Clone(orderSortFieldValues)
}

func (e OrderSortField) IsValid() bool {
	return slices.Contains(orderSortFieldValues, e)
}

func (e OrderSortField) String() string { return string(e) }

func (e *OrderSortField) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, e, "OrderSortField")
}
