package memory

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	store *Store
	inTx  bool
}

func (r *orderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	return r.store.run(r.inTx, func(st *state) error {
		for _, existing := range st.orders {
			if existing.OrderNumber == order.OrderNumber {
				return repository.ErrDuplicateOrderNumber
			}
		}
		if order.ID == uuid.Nil {
			order.ID = uuid.New()
		}
		for i := range order.Items {
			if order.Items[i].ID == uuid.Nil {
				order.Items[i].ID = uuid.New()
			}
			order.Items[i].OrderID = order.ID
		}
		now := time.Now()
		if order.CreatedAt.IsZero() {
			order.CreatedAt = now
		}
		order.UpdatedAt = now
		st.orders[order.ID] = copyOrder(*order)

		return nil
	})
}

func (r *orderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order
	err := r.store.run(r.inTx, func(st *state) error {
		order, ok := st.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		o := copyOrder(order)
		found = &o

		return nil
	})

	return found, err
}

func (r *orderRepository) FindOrderByNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	var found *entity.Order
	err := r.store.run(r.inTx, func(st *state) error {
		for _, order := range st.orders {
			if order.OrderNumber == orderNumber {
				o := copyOrder(order)
				found = &o

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})

	return found, err
}

func (r *orderRepository) ListOrdersByCustomer(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, order := range st.orders {
			if order.CustomerID != nil && *order.CustomerID == customerID {
				o := copyOrder(order)
				orders = append(orders, &o)
			}
		}

		return nil
	})

	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	return page(orders, limit, offset), err
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func (r *orderRepository) UpdateOrderStatus(_ context.Context, order *entity.Order, expected entity.OrderStatus) error {
	return r.store.run(r.inTx, func(st *state) error {
		stored, ok := st.orders[order.ID]
		if !ok {
			return repository.ErrOrderNotFound
		}
		if stored.Status != expected {
			return repository.ErrOrderStatusConflict
		}
		stored.Status = order.Status
		stored.PaidAt = order.PaidAt
		stored.ShippedAt = order.ShippedAt
		stored.DeliveredAt = order.DeliveredAt
		stored.CancelledAt = order.CancelledAt
		stored.UpdatedAt = time.Now()
		order.UpdatedAt = stored.UpdatedAt
		st.orders[order.ID] = stored

		return nil
	})
}

func (r *orderRepository) SetItemAllocations(_ context.Context, itemID uuid.UUID, allocations []entity.StockAllocation) error {
	return r.store.run(r.inTx, func(st *state) error {
		for id, order := range st.orders {
			for i := range order.Items {
				if order.Items[i].ID == itemID {
					order.Items[i].Allocations = append([]entity.StockAllocation(nil), allocations...)
					st.orders[id] = order

					return nil
				}
			}
		}

		return repository.ErrOrderNotFound
	})
}

func (r *orderRepository) AppendHistory(_ context.Context, entry *entity.OrderStatusHistory) error {
	return r.store.run(r.inTx, func(st *state) error {
		if _, ok := st.orders[entry.OrderID]; !ok {
			return repository.ErrOrderNotFound
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = time.Now()
		}
		st.history[entry.OrderID] = append(st.history[entry.OrderID], *entry)

		return nil
	})
}

func (r *orderRepository) ListHistory(_ context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	history := make([]*entity.OrderStatusHistory, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		entries := st.history[orderID]
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			history = append(history, &entry)
		}

		return nil
	})

	return history, err
}

func (r *orderRepository) FindStalePendingOrders(_ context.Context, before time.Time, limit int) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	err := r.store.run(r.inTx, func(st *state) error {
		for _, order := range st.orders {
			if order.Status == entity.OrderStatusPendingPayment && order.CreatedAt.Before(before) {
				o := copyOrder(order)
				orders = append(orders, &o)
			}
		}

		return nil
	})

	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })

	return page(orders, limit, 0), err
}
