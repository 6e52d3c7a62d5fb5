// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when an order number collides.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
	// ErrOrderStatusConflict is returned when a conditional status update finds the order in another status.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists the order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID returns the order with items; history is not loaded.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber returns the order with items; history is not loaded.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListOrdersByCustomer returns a customer's orders, newest first.
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateOrderStatus writes order.Status and its timestamps only if the stored status equals expected.
	// It returns ErrOrderStatusConflict when the stored status differs.
	UpdateOrderStatus(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error

	// SetItemAllocations records where an item's reservation is held, one entry per location.
	SetItemAllocations(ctx context.Context, itemID uuid.UUID, allocations []entity.StockAllocation) error

	// AppendHistory appends a status history entry.
	AppendHistory(ctx context.Context, entry *entity.OrderStatusHistory) error

	// ListHistory returns an order's history entries, newest first.
	ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error)

	// FindStalePendingOrders returns PENDING_PAYMENT orders created before the given time.
	FindStalePendingOrders(ctx context.Context, before time.Time, limit int) ([]*entity.Order, error)
}
