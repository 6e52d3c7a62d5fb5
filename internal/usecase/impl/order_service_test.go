package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updateStatus(t *testing.T, h *engineHarness, orderID uuid.UUID, status entity.OrderStatus) *entity.Order {
	t.Helper()

	order, err := h.orders.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID:    orderID,
		Status:     status,
		OperatorID: uuid.New(),
		Meta:       entity.RequestMeta{IPAddress: "10.0.0.1", UserAgent: "admin"},
	})
	require.NoError(t, err)

	return order
}

func TestOrderService_CancelUnpaidReleasesReservation(t *testing.T) {
	s := newPaidScenario(t)

	order := updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusCancelled)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.NotNil(t, order.CancelledAt)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity)
	assert.Equal(t, 0, reserved)
	quantity, reserved = s.h.stockOf(t, s.variantB)
	assert.Equal(t, 5, quantity)
	assert.Equal(t, 0, reserved)

	assert.Equal(t, entity.PaymentStatusFailed, s.h.payment(t, s.result.Reference).Status)
}

func TestOrderService_CancelPaidRestoresStock(t *testing.T) {
	s := newPaidScenario(t)

	_, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusProcessing)

	order := updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusCancelled)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity, "committed units go back on the shelf")
	assert.Equal(t, 0, reserved)
	quantity, reserved = s.h.stockOf(t, s.variantB)
	assert.Equal(t, 5, quantity)
	assert.Equal(t, 0, reserved)

	assert.Equal(t, entity.PaymentStatusSuccess, s.h.payment(t, s.result.Reference).Status)
}

func TestOrderService_OperatorMarksBankTransferPaid(t *testing.T) {
	s := newPaidScenario(t)

	order := updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusPaid)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity)
	assert.Equal(t, 0, reserved)

	payment := s.h.payment(t, s.result.Reference)
	assert.Equal(t, entity.PaymentStatusSuccess, payment.Status)
	assert.NotNil(t, payment.PaidAt)

	// The provider confirming afterwards changes nothing.
	res, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeAlreadyProcessed, res.Outcome)
	quantity, _ = s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity)
}

func TestOrderService_UnpaidOrderMustBePaidBeforeFulfilment(t *testing.T) {
	s := newPaidScenario(t)

	_, err := s.h.orders.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID:    s.result.OrderID,
		Status:     entity.OrderStatusProcessing,
		OperatorID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	order := s.h.order(t, s.result.OrderID)
	assert.Equal(t, entity.OrderStatusPendingPayment, order.Status)
	assert.Nil(t, order.PaidAt)
	assert.Equal(t, entity.PaymentStatusPending, s.h.payment(t, s.result.Reference).Status)

	// The provider can still settle the order and commit its reservation.
	res, err := s.webhook(t, "success", "270")
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookOutcomeProcessed, res.Outcome)
	assert.Equal(t, entity.PaymentStatusSuccess, s.h.payment(t, s.result.Reference).Status)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity)
	assert.Equal(t, 0, reserved)

	order = updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusDispatched)
	assert.Equal(t, entity.OrderStatusDispatched, order.Status)
	assert.NotNil(t, order.PaidAt)
}

func TestOrderService_RefundUnpaidReleasesReservation(t *testing.T) {
	s := newPaidScenario(t)

	updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusRefunded)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity)
	assert.Equal(t, 0, reserved)
}

func TestOrderService_RefundPaidKeepsStockDeducted(t *testing.T) {
	s := newPaidScenario(t)

	_, err := s.webhook(t, "success", "270")
	require.NoError(t, err)

	order := updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusRefunded)
	assert.Equal(t, entity.OrderStatusRefunded, order.Status)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 8, quantity, "refunded units are not put back on the shelf")
	assert.Equal(t, 0, reserved)
	assert.Equal(t, entity.PaymentStatusSuccess, s.h.payment(t, s.result.Reference).Status)
}

func TestOrderService_FulfilmentEmitsEvents(t *testing.T) {
	s := newPaidScenario(t)

	_, err := s.webhook(t, "success", "270")
	require.NoError(t, err)

	for _, status := range []entity.OrderStatus{
		entity.OrderStatusProcessing,
		entity.OrderStatusPacked,
		entity.OrderStatusDispatched,
		entity.OrderStatusDelivered,
		entity.OrderStatusCompleted,
	} {
		order := updateStatus(t, s.h, s.result.OrderID, status)
		assert.Equal(t, status, order.Status)
	}

	order := s.h.order(t, s.result.OrderID)
	assert.NotNil(t, order.ShippedAt)
	assert.NotNil(t, order.DeliveredAt)
	assert.Len(t, order.History, 7)

	types := make([]string, 0)
	for _, event := range s.h.outboxEvents(t) {
		types = append(types, event.EventType)
	}
	assert.ElementsMatch(t, []string{
		string(entity.OrderEventPaid),
		string(entity.OrderEventDispatched),
		string(entity.OrderEventDelivered),
	}, types)

	audit := s.h.store.AuditLogs()
	updates := 0
	for _, entry := range audit {
		if entry.Action == entity.AuditActionOrderStatusUpdated {
			updates++
			assert.Equal(t, "10.0.0.1", entry.IPAddress)
			assert.NotNil(t, entry.ActorID)
		}
	}
	assert.Equal(t, 5, updates)
}

func TestOrderService_UpdateStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, s *paidScenario)
		to    entity.OrderStatus
	}{
		{
			name: "cancel a refunded order",
			setup: func(t *testing.T, s *paidScenario) {
				updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusRefunded)
			},
			to: entity.OrderStatusCancelled,
		},
		{
			name: "move backwards",
			setup: func(t *testing.T, s *paidScenario) {
				_, err := s.webhook(t, "success", "270")
				require.NoError(t, err)
				updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusProcessing)
			},
			to: entity.OrderStatusPaid,
		},
		{
			name: "leave a terminal state",
			setup: func(t *testing.T, s *paidScenario) {
				updateStatus(t, s.h, s.result.OrderID, entity.OrderStatusCancelled)
			},
			to: entity.OrderStatusPendingPayment,
		},
		{
			name: "same status",
			to:   entity.OrderStatusPendingPayment,
		},
		{
			name: "dispatch an unpaid order",
			to:   entity.OrderStatusDispatched,
		},
		{
			name: "complete an unpaid order",
			to:   entity.OrderStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPaidScenario(t)
			if tt.setup != nil {
				tt.setup(t, s)
			}
			before := s.h.order(t, s.result.OrderID)
			quantity, reserved := s.h.stockOf(t, s.variantA)

			_, err := s.h.orders.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
				OrderID:    s.result.OrderID,
				Status:     tt.to,
				OperatorID: uuid.New(),
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

			after := s.h.order(t, s.result.OrderID)
			assert.Equal(t, before.Status, after.Status)
			assert.Len(t, after.History, len(before.History))
			q, r := s.h.stockOf(t, s.variantA)
			assert.Equal(t, quantity, q)
			assert.Equal(t, reserved, r)
		})
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	h := newEngineHarness(t)

	_, err := h.orders.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  entity.OrderStatus("LOST_IN_TRANSIT"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = h.orders.UpdateStatus(context.Background(), &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  entity.OrderStatusPaid,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_Ownership(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	order, err := s.h.orders.GetOrder(ctx, s.result.OrderID, usecase.Viewer{Identity: s.identity})
	require.NoError(t, err)
	assert.Equal(t, s.result.OrderNumber, order.OrderNumber)
	require.Len(t, order.History, 1)
	assert.Equal(t, historyNoteOrderCreated, order.History[0].Note)

	_, err = s.h.orders.GetOrder(ctx, s.result.OrderID, usecase.Viewer{Identity: sessionIdentity()})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	_, err = s.h.orders.GetOrder(ctx, s.result.OrderID, usecase.Viewer{Identity: entity.CustomerIdentity(uuid.New())})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	_, err = s.h.orders.GetOrder(ctx, uuid.New(), usecase.Viewer{IsOperator: true})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ExpireStalePendingOrders(t *testing.T) {
	s := newPaidScenario(t)
	ctx := context.Background()

	// A paid order is never swept.
	identity := sessionIdentity()
	s.h.addToCart(t, identity, s.variantB, 1)
	paid := s.h.placeOrder(t, identity, entity.PaymentMethodBankTransfer)
	_, err := s.h.payments.HandleWebhook(ctx, webhookPayload(t, paid.Reference, "success", "70"), testGoodSignature)
	require.NoError(t, err)

	expired, err := s.h.orders.ExpireStalePendingOrders(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, expired, "nothing is an hour old yet")

	time.Sleep(5 * time.Millisecond)
	expired, err = s.h.orders.ExpireStalePendingOrders(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	order := s.h.order(t, s.result.OrderID)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	assert.Equal(t, historyNoteExpired, order.History[0].Note)
	assert.Equal(t, entity.OrderStatusPaid, s.h.order(t, paid.OrderID).Status)

	quantity, reserved := s.h.stockOf(t, s.variantA)
	assert.Equal(t, 10, quantity)
	assert.Equal(t, 0, reserved)
	quantity, reserved = s.h.stockOf(t, s.variantB)
	assert.Equal(t, 4, quantity, "the paid order keeps its unit")
	assert.Equal(t, 0, reserved)

	assert.Equal(t, entity.PaymentStatusFailed, s.h.payment(t, s.result.Reference).Status)

	again, err := s.h.orders.ExpireStalePendingOrders(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestOrderService_ExpireStalePendingOrders_InvalidAge(t *testing.T) {
	h := newEngineHarness(t)

	_, err := h.orders.ExpireStalePendingOrders(context.Background(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

type orderServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceFixtures) {
	t.Helper()

	fx := &orderServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
	}

	return NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Logger:    newDiscardLogger(),
	}), fx
}

func TestOrderService_ListCustomerOrders(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name       string
		customerID uuid.UUID
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
		wantErr    error
	}{
		{name: "default page", customerID: customerID, wantLimit: defaultOrderPageSize},
		{name: "clamped page", customerID: customerID, limit: 1000, offset: -5, wantLimit: maxOrderPageSize},
		{name: "explicit page", customerID: customerID, limit: 5, offset: 10, wantLimit: 5, wantOffset: 10},
		{name: "anonymous", customerID: uuid.Nil, wantErr: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestOrderService(t)
			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().
					ListOrdersByCustomer(mock.Anything, tt.customerID, tt.wantLimit, tt.wantOffset).
					Return([]*entity.Order{{ID: uuid.New()}}, nil)
			}

			orders, err := srv.ListCustomerOrders(context.Background(), tt.customerID, tt.limit, tt.offset)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, 1)
		})
	}
}

func TestOrderService_ExpireStalePendingOrders_ContinuesPastFailures(t *testing.T) {
	srv, fx := createTestOrderService(t)

	first := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPendingPayment}
	second := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPendingPayment}
	fx.orderRepo.EXPECT().
		FindStalePendingOrders(mock.Anything, mock.AnythingOfType("time.Time"), staleOrderBatchSize).
		Return([]*entity.Order{first, second}, nil).
		Once()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	txOrderRepo.EXPECT().FindOrderByID(mock.Anything, first.ID).Return(nil, repository.ErrOrderNotFound)
	// Paid in the meantime.
	txOrderRepo.EXPECT().FindOrderByID(mock.Anything, second.ID).
		Return(&entity.Order{ID: second.ID, Status: entity.OrderStatusPaid}, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Times(2)

	expired, err := srv.ExpireStalePendingOrders(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.Zero(t, expired)
}
