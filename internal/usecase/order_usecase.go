package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateOrderStatusInput is an operator's status change.
type UpdateOrderStatusInput struct {
	OrderID    uuid.UUID
	Status     entity.OrderStatus
	Note       string
	OperatorID uuid.UUID
	Meta       entity.RequestMeta
}

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	// GetOrder returns an order with its history, enforcing ownership for non-operators
	GetOrder(ctx context.Context, orderID uuid.UUID, viewer Viewer) (*entity.Order, error)

	// ListCustomerOrders returns a customer's orders, newest first
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateStatus applies an operator status change and its stock side effects
	UpdateStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error)

	// ExpireStalePendingOrders cancels PENDING_PAYMENT orders older than maxAge and releases their stock
	ExpireStalePendingOrders(ctx context.Context, maxAge time.Duration) (int, error)
}
