package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitPaymentRequest is what the order engine asks a provider to collect.
type InitPaymentRequest struct {
	OrderID     uuid.UUID
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Method      entity.PaymentMethod
	Customer    entity.ContactInfo
	Description string
	CallbackURL string
	ReturnURL   string
	Metadata    map[string]string
}

// InitPaymentResult is a provider's answer to an initialization request.
// Business-level failures come back with Success=false rather than an error.
type InitPaymentResult struct {
	Success     bool
	Reference   string // Reference the provider will report in callbacks.
	CheckoutURL string
	Message     string
}

// PaymentVerification is the provider's view of a payment looked up on demand.
type PaymentVerification struct {
	Status            entity.ProviderStatus
	Amount            decimal.Decimal
	Reference         string
	ProviderReference string
	Message           string
}

// WebhookData is a provider callback normalised into one shape.
type WebhookData struct {
	Reference         string
	Status            entity.ProviderStatus
	RawStatus         string
	Amount            decimal.Decimal
	ProviderReference string
}

// PaymentGateway abstracts one external payment processor.
type PaymentGateway interface {
	// Name returns the provider name stored on payments, e.g. HUBTEL.
	Name() string

	// InitializePayment starts a payment. It returns an error only for configuration
	// problems; network and provider failures are reported in the result.
	InitializePayment(ctx context.Context, req *InitPaymentRequest) (*InitPaymentResult, error)

	// VerifyPayment asks the provider for the current state of a payment.
	VerifyPayment(ctx context.Context, reference string) (*PaymentVerification, error)

	// SignatureHeaders lists the request headers that may carry the webhook signature.
	SignatureHeaders() []string

	// VerifyWebhookSignature checks an HMAC over the raw body in constant time.
	VerifyWebhookSignature(payload []byte, signature string) bool

	// ParseWebhookData normalises a callback body.
	ParseWebhookData(payload []byte) (*WebhookData, error)
}
