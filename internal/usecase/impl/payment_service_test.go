package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paidScenario places the two-line bank transfer order used by the reconciliation tests.
type paidScenario struct {
	h        *engineHarness
	variantA uuid.UUID
	variantB uuid.UUID
	identity entity.Identity
	result   *usecase.CheckoutResult
}

func newPaidScenario(t *testing.T) *paidScenario {
	t.Helper()

	h := newEngineHarness(t)
	s := &paidScenario{
		h:        h,
		variantA: h.seedVariant(t, "Variant A", 100, 10),
		variantB: h.seedVariant(t, "Variant B", 50, 5),
		identity: sessionIdentity(),
	}
	h.addToCart(t, s.identity, s.variantA, 2)
	h.addToCart(t, s.identity, s.variantB, 1)
	s.result = h.placeOrder(t, s.identity, entity.PaymentMethodBankTransfer)

	return s
}

func (s *paidScenario) webhook(t *testing.T, status, amount string) (*usecase.ReconcileResult, error) {
	t.Helper()

	return s.h.payments.HandleWebhook(context.Background(), webhookPayload(t, s.result.Reference, status, amount), testGoodSignature)
}

func TestPaymentService_HandleWebhook_SuccessCommitsStock(t *testing.T) {
	s := newPaidScenario(t)

	res, err := s.webhook(t, "success", "270.00")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeProcessed, res.Outcome)
	assert.Equal(t, entity.PaymentStatusSuccess, res.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPaid, res.OrderStatus)

	payment := s.h.payment(t, s.result.Reference)
	assert.Equal(t, entity.PaymentStatusSuccess, payment.Status)
	require.NotNil(t, payment.PaidAt)
	require.NotNil(t, payment.ProviderReference)
	assert.Equal(t, "PRV-"+s.result.Reference, *payment.ProviderReference)

	order := s.h.order(t, s.result.OrderID)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)
	require.Len(t, order.History, 2)
	assert.Equal(t, entity.OrderStatusPaid, order.History[0].Status, "history is newest first")

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity)
	assert.Equal(t, 0, reserved)
	quantity, reserved = s.h.stockOf(t, s.variantB)
	assert.Equal(t, 4, quantity)
	assert.Equal(t, 0, reserved)

	events := s.h.outboxEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, string(entity.OrderEventPaid), events[0].EventType)
	assert.Equal(t, s.result.OrderID, events[0].AggregateID)
}

func TestPaymentService_HandleWebhook_ReplayIsIdempotent(t *testing.T) {
	s := newPaidScenario(t)

	first, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	require.Equal(t, usecase.WebhookOutcomeProcessed, first.Outcome)
	orderAfterFirst := s.h.order(t, s.result.OrderID)

	for range 5 {
		res, err := s.webhook(t, "success", "270")
		require.NoError(t, err)
		assert.Equal(t, usecase.WebhookOutcomeAlreadyProcessed, res.Outcome)
		assert.Equal(t, entity.OrderStatusPaid, res.OrderStatus)
	}

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity, "stock is committed exactly once")
	assert.Equal(t, 0, reserved)

	order := s.h.order(t, s.result.OrderID)
	assert.Equal(t, orderAfterFirst.PaidAt, order.PaidAt)
	assert.Len(t, order.History, len(orderAfterFirst.History))
	assert.Len(t, s.h.outboxEvents(t), 1, "one notification event")
}

func TestPaymentService_HandleWebhook_FailureReleasesStock(t *testing.T) {
	s := newPaidScenario(t)

	res, err := s.webhook(t, "failed", "270")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeProcessed, res.Outcome)
	assert.Equal(t, entity.OrderStatusCancelled, res.OrderStatus)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity, "nothing was deducted")
	assert.Equal(t, 0, reserved)

	order := s.h.order(t, s.result.OrderID)
	assert.NotNil(t, order.CancelledAt)
	assert.Nil(t, order.PaidAt)
	assert.Equal(t, historyNotePaymentFailed, order.History[0].Note)

	events := s.h.outboxEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, string(entity.OrderEventPaymentFailed), events[0].EventType)

	// A late success for a failed payment cannot resurrect the order.
	late, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeIgnored, late.Outcome)
	assert.Equal(t, entity.OrderStatusCancelled, s.h.order(t, s.result.OrderID).Status)
}

func TestPaymentService_HandleWebhook_NoOpBranches(t *testing.T) {
	tests := []struct {
		name   string
		status string
		amount string
	}{
		{name: "unknown status", status: "processing_at_bank", amount: "270"},
		{name: "pending status", status: "pending", amount: "270"},
		{name: "amount mismatch", status: "success", amount: "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPaidScenario(t)

			res, err := s.webhook(t, tt.status, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, usecase.WebhookOutcomeIgnored, res.Outcome)

			assert.Equal(t, entity.PaymentStatusPending, s.h.payment(t, s.result.Reference).Status)
			assert.Equal(t, entity.OrderStatusPendingPayment, s.h.order(t, s.result.OrderID).Status)
			_, reserved := s.h.stockOf(t, s.variantA)
			assert.Equal(t, 2, reserved)
			assert.Empty(t, s.h.outboxEvents(t))
		})
	}
}

func TestPaymentService_HandleWebhook_Rejections(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	_, err := s.h.payments.HandleWebhook(ctx, webhookPayload(t, s.result.Reference, "success", "270"), "forged")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)

	_, err = s.h.payments.HandleWebhook(ctx, []byte("{not json"), testGoodSignature)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookPayload)

	_, err = s.h.payments.HandleWebhook(ctx, webhookPayload(t, "PAY-UNKNOWN", "success", "270"), testGoodSignature)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)

	assert.Equal(t, entity.PaymentStatusPending, s.h.payment(t, s.result.Reference).Status)
	_, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 2, reserved, "rejected callbacks touch nothing")
}

func TestPaymentService_HandleWebhook_SuccessAfterOperatorCancel(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	// Cancelling fails the open payment, so a late success is ignored and stock stays released.
	_, err := s.h.orders.UpdateStatus(ctx, &usecase.UpdateOrderStatusInput{
		OrderID:    s.result.OrderID,
		Status:     entity.OrderStatusCancelled,
		OperatorID: uuid.New(),
	})
	require.NoError(t, err)

	res, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeIgnored, res.Outcome)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity)
	assert.Equal(t, 0, reserved)
}

func TestPaymentService_RetryPayment(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()
	viewer := usecase.Viewer{Identity: s.identity}

	retry, err := s.h.payments.RetryPayment(ctx, s.result.OrderID, viewer, "")
	require.NoError(t, err)
	assert.NotEqual(t, s.result.Reference, retry.Reference)
	assert.Equal(t, s.result.OrderNumber, retry.OrderNumber)
	assert.Equal(t, "bank_transfer", retry.PaymentMethod)

	payments, err := s.h.repos.PaymentRepo().ListPaymentsByOrder(ctx, s.result.OrderID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	// The first attempt failing leaves the order open for the retry.
	res, err := s.webhook(t, "failed", "270")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingPayment, res.OrderStatus)

	res, err = s.h.payments.HandleWebhook(ctx, webhookPayload(t, retry.Reference, "success", "270"), testGoodSignature)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, res.OrderStatus)

	quantity, _ := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity)
}

func TestPaymentService_RetryPayment_Rejections(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	_, err := s.h.payments.RetryPayment(ctx, s.result.OrderID, usecase.Viewer{Identity: sessionIdentity()}, "")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound, "strangers cannot see the order")

	_, err = s.webhook(t, "success", "270")
	require.NoError(t, err)

	_, err = s.h.payments.RetryPayment(ctx, s.result.OrderID, usecase.Viewer{Identity: s.identity}, "")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPayable)
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Verified", 100, 3)
	h.addToCart(t, identity, variant, 1)

	h.gateway.EXPECT().InitializePayment(mock.Anything, mock.Anything).
		Return(&service.InitPaymentResult{Success: true, CheckoutURL: "https://pay.example.com/x"}, nil)
	result := h.placeOrder(t, identity, entity.PaymentMethodMTN)

	h.gateway.EXPECT().VerifyPayment(mock.Anything, result.Reference).Return(&service.PaymentVerification{
		Status:            entity.ProviderStatusPending,
		Reference:         result.Reference,
		ProviderReference: "TX-1",
	}, nil).Once()

	res, err := h.payments.VerifyPayment(ctx, result.Reference, usecase.Viewer{Identity: identity})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeIgnored, res.Outcome)
	assert.Equal(t, entity.PaymentStatusPending, res.PaymentStatus)

	h.gateway.EXPECT().VerifyPayment(mock.Anything, result.Reference).Return(&service.PaymentVerification{
		Status:            entity.ProviderStatusSuccess,
		Amount:            decimal.NewFromInt(120),
		Reference:         result.Reference,
		ProviderReference: "TX-1",
	}, nil).Once()

	res, err = h.payments.VerifyPayment(ctx, result.Reference, usecase.Viewer{Identity: identity})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeProcessed, res.Outcome)
	assert.Equal(t, entity.OrderStatusPaid, res.OrderStatus)

	// Settled payments are answered from storage.
	res, err = h.payments.VerifyPayment(ctx, result.Reference, usecase.Viewer{IsOperator: true})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeAlreadyProcessed, res.Outcome)
}

func TestPaymentService_VerifyPayment_ProviderError(t *testing.T) {
	h := newEngineHarness(t)
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Flaky", 100, 3)
	h.addToCart(t, identity, variant, 1)

	h.gateway.EXPECT().InitializePayment(mock.Anything, mock.Anything).Return(&service.InitPaymentResult{Success: true}, nil)
	result := h.placeOrder(t, identity, entity.PaymentMethodCard)

	h.gateway.EXPECT().VerifyPayment(mock.Anything, result.Reference).Return(nil, errors.New("502 bad gateway"))

	_, err := h.payments.VerifyPayment(context.Background(), result.Reference, usecase.Viewer{Identity: identity})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentVerifyFailed)
	assert.Equal(t, entity.OrderStatusPendingPayment, h.order(t, result.OrderID).Status)
}

func TestPaymentService_BankTransferQR(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	s.h.qr.EXPECT().
		GenerateBankTransferQR(mock.AnythingOfType("*service.BankTransferInstructions")).
		RunAndReturn(func(instructions *service.BankTransferInstructions) ([]byte, error) {
			assert.Equal(t, "GCB Bank", instructions.BankName)
			assert.Equal(t, s.result.OrderNumber, instructions.OrderNumber)
			assert.Equal(t, s.result.Reference, instructions.Reference)
			assert.True(t, decimal.NewFromInt(270).Equal(instructions.Amount))

			return []byte("png"), nil
		})

	png, err := s.h.payments.BankTransferQR(ctx, s.result.OrderID, usecase.Viewer{Identity: s.identity})
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestPaymentService_BankTransferQR_WrongMethod(t *testing.T) {
	h := newEngineHarness(t)
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Card Item", 10, 3)
	h.addToCart(t, identity, variant, 1)

	h.gateway.EXPECT().InitializePayment(mock.Anything, mock.Anything).Return(&service.InitPaymentResult{Success: true}, nil)
	result := h.placeOrder(t, identity, entity.PaymentMethodCard)

	_, err := h.payments.BankTransferQR(context.Background(), result.OrderID, usecase.Viewer{Identity: identity})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPaymentMethod)
}

func TestPaymentService_SignatureHeaders(t *testing.T) {
	h := newEngineHarness(t)
	h.gateway.EXPECT().SignatureHeaders().Return([]string{"x-hubtel-signature"})

	assert.Equal(t, []string{"x-hubtel-signature"}, h.payments.SignatureHeaders())
}
