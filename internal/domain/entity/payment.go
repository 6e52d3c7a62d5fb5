// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of one payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodMTN          PaymentMethod = "MOBILE_MONEY_MTN"
	PaymentMethodVodafone     PaymentMethod = "MOBILE_MONEY_VODAFONE"
	PaymentMethodAirtelTigo   PaymentMethod = "MOBILE_MONEY_AIRTELTIGO"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

var paymentMethodSelectors = map[string]PaymentMethod{
	"momo_mtn":        PaymentMethodMTN,
	"momo_vodafone":   PaymentMethodVodafone,
	"momo_airteltigo": PaymentMethodAirtelTigo,
	"card":            PaymentMethodCard,
	"bank_transfer":   PaymentMethodBankTransfer,
}

// ParsePaymentMethod maps a checkout selector such as "momo_mtn" to a PaymentMethod.
func ParsePaymentMethod(selector string) (PaymentMethod, bool) {
	method, ok := paymentMethodSelectors[strings.ToLower(strings.TrimSpace(selector))]

	return method, ok
}

// Selector returns the checkout selector for the method, e.g. "bank_transfer".
func (m PaymentMethod) Selector() string {
	for selector, method := range paymentMethodSelectors {
		if method == m {
			return selector
		}
	}

	return strings.ToLower(string(m))
}

// IsManual reports whether the method is settled offline without a provider.
func (m PaymentMethod) IsManual() bool {
	return m == PaymentMethodBankTransfer
}

// IsMobileMoney reports whether the method is a mobile money wallet.
func (m PaymentMethod) IsMobileMoney() bool {
	switch m {
	case PaymentMethodMTN, PaymentMethodVodafone, PaymentMethodAirtelTigo:
		return true
	default:
		return false
	}
}

// Payment providers
const (
	PaymentProviderHubtel      = "HUBTEL"
	PaymentProviderFlutterwave = "FLUTTERWAVE"
	PaymentProviderManual      = "MANUAL"
)

// Payment is one attempt to pay for an order.
// Once Status is SUCCESS the record is never modified again.
type Payment struct {
	ID                uuid.UUID       `json:"id"`                 // The Global Unique Identifier (GUID) for the payment.
	OrderID           uuid.UUID       `json:"order_id"`           // The order being paid.
	Provider          string          `json:"provider"`           // Provider name, e.g. HUBTEL.
	Method            PaymentMethod   `json:"method"`             // Payment method.
	Status            PaymentStatus   `json:"status"`             // Current state.
	Amount            decimal.Decimal `json:"amount"`             // Amount requested.
	Currency          string          `json:"currency"`           // ISO currency code.
	Reference         string          `json:"reference"`          // Globally unique reference used with the provider.
	ProviderReference *string         `json:"provider_reference"` // Reference assigned by the provider.
	IdempotencyKey    string          `json:"idempotency_key"`    // Unique key for this attempt.
	FailureReason     string          `json:"failure_reason"`     // Why the attempt failed, if it did.
	PaidAt            *time.Time      `json:"paid_at"`            // When the provider confirmed payment.
	CreatedAt         time.Time       `json:"created_at"`         // Timestamp of when the attempt was created.
	UpdatedAt         time.Time       `json:"updated_at"`         // Timestamp of the last modification.
}

// IsSettled reports whether the payment has reached a final state.
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusSuccess || p.Status == PaymentStatusFailed
}

// ProviderStatus is a provider's payment status normalised into one vocabulary.
type ProviderStatus string

const (
	ProviderStatusSuccess   ProviderStatus = "success"
	ProviderStatusFailed    ProviderStatus = "failed"
	ProviderStatusCancelled ProviderStatus = "cancelled"
	ProviderStatusPending   ProviderStatus = "pending"
	ProviderStatusUnknown   ProviderStatus = "unknown"
)

// NormalizeProviderStatus maps a raw provider status string onto ProviderStatus.
func NormalizeProviderStatus(raw string) ProviderStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "success", "successful", "paid":
		return ProviderStatusSuccess
	case "failed":
		return ProviderStatusFailed
	case "cancelled", "canceled":
		return ProviderStatusCancelled
	case "pending":
		return ProviderStatusPending
	default:
		return ProviderStatusUnknown
	}
}

// IsFailure reports whether the status ends the attempt without payment.
func (s ProviderStatus) IsFailure() bool {
	return s == ProviderStatusFailed || s == ProviderStatusCancelled
}
