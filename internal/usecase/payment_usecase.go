package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WebhookOutcome says what a provider callback did.
type WebhookOutcome string

const (
	WebhookOutcomeProcessed        WebhookOutcome = "processed"
	WebhookOutcomeAlreadyProcessed WebhookOutcome = "already_processed"
	WebhookOutcomeIgnored          WebhookOutcome = "ignored"
)

// ReconcileResult is the outcome of applying a provider status to a payment.
type ReconcileResult struct {
	Outcome       WebhookOutcome       `json:"outcome"`
	Reference     string               `json:"reference"`
	OrderID       uuid.UUID            `json:"order_id"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	OrderStatus   entity.OrderStatus   `json:"order_status"`
}

// Viewer is the caller reading or acting on an order.
type Viewer struct {
	Identity   entity.Identity
	IsOperator bool
}

// PaymentUsecase reconciles provider callbacks and manages payment attempts
type PaymentUsecase interface {
	// SignatureHeaders lists request headers that may carry the webhook signature
	SignatureHeaders() []string

	// HandleWebhook verifies, parses and applies a provider callback
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*ReconcileResult, error)

	// VerifyPayment asks the provider for the payment state and applies a terminal answer
	VerifyPayment(ctx context.Context, reference string, viewer Viewer) (*ReconcileResult, error)

	// RetryPayment starts a new payment attempt for an order still awaiting payment
	RetryPayment(ctx context.Context, orderID uuid.UUID, viewer Viewer, payerPhone string) (*CheckoutResult, error)

	// BankTransferQR renders the bank-transfer instructions of an order as a PNG QR code
	BankTransferQR(ctx context.Context, orderID uuid.UUID, viewer Viewer) ([]byte, error)
}
