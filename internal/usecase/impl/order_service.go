package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
	staleOrderBatchSize  = 100
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrder returns an order with its history, enforcing ownership for non-operators.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID, viewer usecase.Viewer) (*entity.Order, error) {
	order, err := loadViewableOrder(ctx, srv.orderRepo, orderID, viewer)
	if err != nil {
		return nil, err
	}

	if err := attachHistory(ctx, srv.orderRepo, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListCustomerOrders returns a customer's orders, newest first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	if customerID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	limit = min(limit, maxOrderPageSize)
	offset = max(offset, 0)

	orders, err := srv.orderRepo.ListOrdersByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus applies an operator status change and its stock side effects.
//
// Cancelling inspects the paid timestamp rather than the status: a paid order had its stock committed and
// gets it restored, an unpaid one only gives back its reservation.
func (srv *orderService) UpdateStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if input == nil || !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = orderRepo.FindOrderByID(ctx, input.OrderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}

		previous := order.Status
		if !previous.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(previous.String() + " -> " + input.Status.String())
		}
		wasPaid := order.IsPaid()
		now := time.Now()

		if input.Status == entity.OrderStatusPaid {
			if err := settlePendingPayment(ctx, repoFactory, order, now); err != nil {
				return err
			}
		}

		note := input.Note
		if note == "" {
			note = "Status updated to " + input.Status.String()
		}
		if err := transitionOrder(ctx, orderRepo, order, input.Status, note, &input.OperatorID, now); err != nil {
			return err
		}

		if err := applyStatusStockEffects(ctx, repoFactory, order, previous, wasPaid); err != nil {
			return err
		}

		operatorID := input.OperatorID
		if err := repoFactory.AuditRepo().CreateAuditLog(ctx, &entity.AuditLog{
			ID:         uuid.New(),
			ActorID:    &operatorID,
			Action:     entity.AuditActionOrderStatusUpdated,
			EntityType: "order",
			EntityID:   order.ID,
			OldValue:   map[string]any{"status": previous.String()},
			NewValue:   map[string]any{"status": order.Status.String()},
			IPAddress:  input.Meta.IPAddress,
			UserAgent:  input.Meta.UserAgent,
			CreatedAt:  now,
		}); err != nil {
			return errors.Wrap(err, "failed to write audit log")
		}

		if eventType, ok := entity.EventForStatus(order.Status); ok {
			return enqueueOrderEvent(ctx, repoFactory.OutboxRepo(), order, eventType, now)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		append(orderLogAttrs(order), slog.String("operatorID", input.OperatorID.String()))...,
	)

	if err := attachHistory(ctx, srv.orderRepo, order); err != nil {
		return nil, err
	}

	return order, nil
}

// settlePendingPayment records an operator-confirmed payment, e.g. a bank transfer seen on the statement.
func settlePendingPayment(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, now time.Time) error {
	payment, err := repoFactory.PaymentRepo().FindPendingPaymentByOrder(ctx, order.ID)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return commitItems(ctx, repoFactory.StockRepo(), order)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find pending payment")
	}

	if err := repoFactory.PaymentRepo().MarkPaymentSucceeded(ctx, payment.ID, nil, now); err != nil {
		return errors.Wrap(err, "failed to mark payment succeeded")
	}

	return commitItems(ctx, repoFactory.StockRepo(), order)
}

func applyStatusStockEffects(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	order *entity.Order,
	previous entity.OrderStatus,
	wasPaid bool,
) error {
	stockRepo := repoFactory.StockRepo()

	switch order.Status {
	case entity.OrderStatusCancelled:
		if err := failPendingPayments(ctx, repoFactory.PaymentRepo(), order.ID, failureReasonOrderCancelled); err != nil {
			return err
		}
		if wasPaid {
			return restoreItems(ctx, stockRepo, order)
		}

		return releaseItems(ctx, stockRepo, order)
	case entity.OrderStatusRefunded:
		if wasPaid || previous != entity.OrderStatusPendingPayment {
			return nil
		}
		if err := failPendingPayments(ctx, repoFactory.PaymentRepo(), order.ID, failureReasonOrderCancelled); err != nil {
			return err
		}

		return releaseItems(ctx, stockRepo, order)
	default:
		return nil
	}
}

// failPendingPayments closes every open attempt so a late callback cannot pay a closed order.
func failPendingPayments(ctx context.Context, paymentRepo repository.PaymentRepository, orderID uuid.UUID, reason string) error {
	payments, err := paymentRepo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to list payments")
	}

	for _, payment := range payments {
		if payment.Status != entity.PaymentStatusPending {
			continue
		}
		err := paymentRepo.MarkPaymentFailed(ctx, payment.ID, reason)
		if err != nil && !errors.Is(err, repository.ErrPaymentAlreadySettled) {
			return errors.Wrap(err, "failed to mark payment failed")
		}
	}

	return nil
}

func attachHistory(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	history, err := orderRepo.ListHistory(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load order history")
	}

	order.History = make([]entity.OrderStatusHistory, 0, len(history))
	for _, entry := range history {
		order.History = append(order.History, *entry)
	}

	return nil
}

// ExpireStalePendingOrders cancels PENDING_PAYMENT orders older than maxAge and releases their stock.
// A failure on one order is logged and the sweep moves on.
func (srv *orderService) ExpireStalePendingOrders(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("max age must be positive")
	}

	before := time.Now().Add(-maxAge)
	seen := make(map[uuid.UUID]struct{})
	expired := 0

	for {
		if err := ctx.Err(); err != nil {
			return expired, errors.Wrap(err, "expiry sweep interrupted")
		}

		orders, err := srv.orderRepo.FindStalePendingOrders(ctx, before, staleOrderBatchSize)
		if err != nil {
			return expired, errors.Wrap(err, "failed to find stale orders")
		}

		progressed := false
		for _, stale := range orders {
			if _, ok := seen[stale.ID]; ok {
				continue
			}
			seen[stale.ID] = struct{}{}
			progressed = true

			ok, err := srv.expireOrder(ctx, stale.ID)
			if err != nil {
				srv.log(ctx).Error("Failed to expire order", append(orderLogAttrs(stale), slog.Any("error", err))...)

				continue
			}
			if ok {
				expired++
			}
		}

		if len(orders) < staleOrderBatchSize || !progressed {
			break
		}
	}

	srv.log(ctx).Info("Stale order sweep finished", slog.Int("expired", expired))

	return expired, nil
}

func (srv *orderService) expireOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	expired := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindOrderByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		// Paid or cancelled since the sweep listed it.
		if order.Status != entity.OrderStatusPendingPayment {
			return nil
		}

		now := time.Now()
		if err := failPendingPayments(ctx, repoFactory.PaymentRepo(), order.ID, failureReasonExpired); err != nil {
			return err
		}
		if err := transitionOrder(ctx, repoFactory.OrderRepo(), order, entity.OrderStatusCancelled, historyNoteExpired, nil, now); err != nil {
			return err
		}
		if err := releaseItems(ctx, repoFactory.StockRepo(), order); err != nil {
			return err
		}
		if err := enqueueOrderEvent(ctx, repoFactory.OutboxRepo(), order, entity.OrderEventCancelled, now); err != nil {
			return err
		}
		expired = true

		return nil
	})

	return expired, err
}
