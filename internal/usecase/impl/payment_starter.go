package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/pkg/errors"
)

const webhookPath = "/api/v1/payments/webhook"

// paymentStarter asks the configured gateway to start collecting a pending payment.
type paymentStarter struct {
	gateway     service.PaymentGateway
	paymentRepo repository.PaymentRepository
	appURL      string
}

// startOutcome is what the customer needs to complete a provider payment.
type startOutcome struct {
	Reference    string
	CheckoutURL  string
	PaymentError string
}

func (p *paymentStarter) providerName(method entity.PaymentMethod) string {
	if method.IsManual() {
		return entity.PaymentProviderManual
	}

	return p.gateway.Name()
}

// start never rolls the order back: a failed initialization leaves the payment PENDING for a retry.
func (p *paymentStarter) start(
	ctx context.Context,
	logger *slog.Logger,
	order *entity.Order,
	payment *entity.Payment,
	payerPhone string,
) *startOutcome {
	outcome := &startOutcome{Reference: payment.Reference}
	if payment.Method.IsManual() {
		return outcome
	}

	phone := payerPhone
	if phone == "" {
		phone = order.Contact.Phone
	}
	contact := order.Contact
	contact.Phone = util.NormalizeGhanaPhone(phone)

	base := strings.TrimRight(p.appURL, "/")
	result, err := p.gateway.InitializePayment(ctx, &service.InitPaymentRequest{
		OrderID:     order.ID,
		Reference:   payment.Reference,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Method:      payment.Method,
		Customer:    contact,
		Description: "Order " + order.OrderNumber,
		CallbackURL: base + webhookPath,
		ReturnURL:   base + "/order/success?id=" + order.ID.String(),
		Metadata: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
		},
	})
	if err != nil {
		logger.Error("Payment gateway rejected initialization",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("provider", p.gateway.Name()),
			slog.Any("error", err),
		)
		outcome.PaymentError = "payment could not be started"

		return outcome
	}

	if !result.Success {
		logger.Warn("Payment initialization failed",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("provider", p.gateway.Name()),
			slog.String("message", result.Message),
		)
		outcome.PaymentError = result.Message
		if outcome.PaymentError == "" {
			outcome.PaymentError = "payment could not be started"
		}

		return outcome
	}

	if result.Reference != "" && result.Reference != payment.Reference {
		if err := p.replaceReference(ctx, payment, result.Reference); err != nil {
			logger.Warn("Failed to store provider reference",
				slog.String("reference", payment.Reference),
				slog.String("providerReference", result.Reference),
				slog.Any("error", err),
			)
		} else {
			outcome.Reference = result.Reference
		}
	}
	outcome.CheckoutURL = result.CheckoutURL

	return outcome
}

func (p *paymentStarter) replaceReference(ctx context.Context, payment *entity.Payment, reference string) error {
	if err := p.paymentRepo.UpdatePaymentReference(ctx, payment.ID, reference); err != nil {
		return errors.Wrap(err, "failed to update payment reference")
	}
	payment.Reference = reference

	return nil
}
