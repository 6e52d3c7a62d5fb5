package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultMinDeliveryDays = 1
	defaultMaxDeliveryDays = 3

	historyNoteOrderCreated   = "Order created, awaiting payment"
	historyNotePaymentFailed  = "Payment failed"
	historyNoteCheckoutFailed = "Checkout failed: insufficient stock"
	historyNoteExpired        = "Payment window expired"

	failureReasonRefundRequired = "payment received for an order that no longer awaits payment; refund required"
	failureReasonOutOfStock     = "checkout aborted: insufficient stock"
	failureReasonOrderCancelled = "order cancelled"
	failureReasonExpired        = "payment window expired"
)

// stockAction is one of the ledger mutations applied to every item of an order.
type stockAction func(ctx context.Context, variantID, locationID uuid.UUID, qty int) error

// applyToItems runs a ledger mutation for every location an item's reservation is held at.
// Items without allocations never reserved stock and are skipped.
func applyToItems(ctx context.Context, order *entity.Order, action stockAction, name string) error {
	for _, item := range order.Items {
		for _, alloc := range item.Allocations {
			if err := action(ctx, item.VariantID, alloc.LocationID, alloc.Quantity); err != nil {
				return errors.Wrapf(err, "failed to %s stock for variant %s at %s", name, item.VariantID, alloc.LocationID)
			}
		}
	}

	return nil
}

func commitItems(ctx context.Context, stockRepo repository.StockRepository, order *entity.Order) error {
	return applyToItems(ctx, order, stockRepo.Commit, "commit")
}

func releaseItems(ctx context.Context, stockRepo repository.StockRepository, order *entity.Order) error {
	return applyToItems(ctx, order, stockRepo.Release, "release")
}

func restoreItems(ctx context.Context, stockRepo repository.StockRepository, order *entity.Order) error {
	return applyToItems(ctx, order, stockRepo.Restore, "restore")
}

// transitionOrder moves the order to next with a compare-and-set on its current status and appends history.
func transitionOrder(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	order *entity.Order,
	next entity.OrderStatus,
	note string,
	createdBy *uuid.UUID,
	now time.Time,
) error {
	previous := order.Status
	order.Status = next
	order.MarkStatusTimestamp(next, now)

	if err := orderRepo.UpdateOrderStatus(ctx, order, previous); err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return domainerrors.ErrConflict.WrapMessage("order status changed concurrently")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	if err := orderRepo.AppendHistory(ctx, entity.NewStatusHistory(order.ID, next, note, createdBy, now)); err != nil {
		return errors.Wrap(err, "failed to append order history")
	}

	return nil
}

// enqueueOrderEvent writes the event to the outbox inside the caller's transaction.
func enqueueOrderEvent(
	ctx context.Context,
	outboxRepo repository.OutboxRepository,
	order *entity.Order,
	eventType entity.OrderEventType,
	now time.Time,
) error {
	event := &entity.OrderEvent{
		EventID:     uuid.New(),
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		OccurredAt:  now,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode order event")
	}

	if err := outboxRepo.EnqueueEvent(ctx, &entity.OutboxEvent{
		ID:          event.EventID,
		EventType:   string(eventType),
		AggregateID: order.ID,
		Payload:     payload,
		CreatedAt:   now,
	}); err != nil {
		return errors.Wrap(err, "failed to enqueue order event")
	}

	return nil
}

// canView reports whether the viewer may read or act on the order.
func canView(order *entity.Order, viewer usecase.Viewer) bool {
	if viewer.IsOperator {
		return true
	}

	identity := viewer.Identity
	if identity.IsCustomer() {
		return order.CustomerID != nil && *order.CustomerID == *identity.CustomerID
	}

	return identity.SessionToken != "" && order.SessionToken != nil && *order.SessionToken == identity.SessionToken
}

// loadViewableOrder hides orders the viewer does not own behind a not-found error.
func loadViewableOrder(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID, viewer usecase.Viewer) (*entity.Order, error) {
	order, err := orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if !canView(order, viewer) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func orderLogAttrs(order *entity.Order) []any {
	return []any{
		slog.String("orderID", order.ID.String()),
		slog.String("orderNumber", order.OrderNumber),
		slog.String("status", order.Status.String()),
	}
}
