package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists the order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID reads from the primary so a webhook arriving right after checkout sees the order.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items.Allocations").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByNumber returns the order with items.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items.Allocations").
		Where("order_number = ?", orderNumber).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByCustomer returns a customer's orders, newest first.
func (repo *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items.Allocations").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return toOrderDomains(orderModels), nil
}

// UpdateOrderStatus is a compare-and-set on the status column.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order, expected entity.OrderStatus) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", order.ID, string(expected)).
		Updates(map[string]any{
			"status":       string(order.Status),
			"paid_at":      order.PaidAt,
			"shipped_at":   order.ShippedAt,
			"delivered_at": order.DeliveredAt,
			"cancelled_at": order.CancelledAt,
			"updated_at":   now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStatusConflict
	}

	order.UpdatedAt = now

	return nil
}

// allocationItemForeignKey ties an allocation to its order item.
const allocationItemForeignKey = "fk_allocations_order_item"

// SetItemAllocations records where an item's reservation is held.
func (repo *orderRepository) SetItemAllocations(ctx context.Context, itemID uuid.UUID, allocations []entity.StockAllocation) error {
	if len(allocations) == 0 {
		return nil
	}

	rows := make([]model.OrderItemAllocationModel, 0, len(allocations))
	for _, alloc := range allocations {
		rows = append(rows, model.OrderItemAllocationModel{
			OrderItemID: itemID,
			LocationID:  alloc.LocationID,
			Quantity:    alloc.Quantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) && violatedConstraint(err) == allocationItemForeignKey {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to record item allocations")
	}

	return nil
}

// AppendHistory appends a status history entry.
func (repo *orderRepository) AppendHistory(ctx context.Context, entry *entity.OrderStatusHistory) error {
	historyM := &model.OrderStatusHistoryModel{
		ID:        entry.ID,
		OrderID:   entry.OrderID,
		Status:    string(entry.Status),
		Note:      entry.Note,
		CreatedBy: entry.CreatedBy,
		CreatedAt: entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append order history")
	}

	entry.ID = historyM.ID
	entry.CreatedAt = historyM.CreatedAt

	return nil
}

// ListHistory returns an order's history entries, newest first.
func (repo *orderRepository) ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	var historyModels []*model.OrderStatusHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order history")
	}

	history := make([]*entity.OrderStatusHistory, 0, len(historyModels))
	for _, h := range historyModels {
		history = append(history, &entity.OrderStatusHistory{
			ID:        h.ID,
			OrderID:   h.OrderID,
			Status:    entity.OrderStatus(h.Status),
			Note:      h.Note,
			CreatedBy: h.CreatedBy,
			CreatedAt: h.CreatedAt,
		})
	}

	return history, nil
}

// FindStalePendingOrders returns PENDING_PAYMENT orders created before the given time, oldest first.
func (repo *orderRepository) FindStalePendingOrders(ctx context.Context, before time.Time, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items.Allocations").
		Where("status = ? AND created_at < ?", string(entity.OrderStatusPendingPayment), before).
		Order("created_at ASC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale pending orders")
	}

	return toOrderDomains(orderModels), nil
}

// --- Mapper Functions ---

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			VariantID:   item.VariantID,
			Allocations: toAllocationDomains(item.Allocations),
			ProductName: item.ProductName,
			SKU:         item.SKU,
			ImageURL:    item.ImageURL,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return &entity.Order{
		ID:           data.ID,
		OrderNumber:  data.OrderNumber,
		CustomerID:   data.CustomerID,
		SessionToken: data.SessionToken,
		Contact: entity.ContactInfo{
			Name:  data.ContactName,
			Email: data.ContactEmail,
			Phone: data.ContactPhone,
		},
		Shipping: entity.ShippingAddress{
			Region:   data.ShippingRegion,
			City:     data.ShippingCity,
			Street:   data.ShippingStreet,
			Landmark: data.ShippingLandmark,
			GPSCode:  data.ShippingGPSCode,
		},
		Subtotal:      data.Subtotal,
		DeliveryFee:   data.DeliveryFee,
		Discount:      data.Discount,
		Tax:           data.Tax,
		Total:         data.Total,
		Currency:      data.Currency,
		Status:        entity.OrderStatus(data.Status),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Notes:         data.Notes,
		PaidAt:        data.PaidAt,
		ShippedAt:     data.ShippedAt,
		DeliveredAt:   data.DeliveredAt,
		CancelledAt:   data.CancelledAt,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			ImageURL:    item.ImageURL,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return &model.OrderModel{
		ID:               data.ID,
		OrderNumber:      data.OrderNumber,
		CustomerID:       data.CustomerID,
		SessionToken:     data.SessionToken,
		ContactName:      data.Contact.Name,
		ContactEmail:     data.Contact.Email,
		ContactPhone:     data.Contact.Phone,
		ShippingRegion:   data.Shipping.Region,
		ShippingCity:     data.Shipping.City,
		ShippingStreet:   data.Shipping.Street,
		ShippingLandmark: data.Shipping.Landmark,
		ShippingGPSCode:  data.Shipping.GPSCode,
		Subtotal:         data.Subtotal,
		DeliveryFee:      data.DeliveryFee,
		Discount:         data.Discount,
		Tax:              data.Tax,
		Total:            data.Total,
		Currency:         data.Currency,
		Status:           string(data.Status),
		PaymentMethod:    string(data.PaymentMethod),
		Notes:            data.Notes,
		PaidAt:           data.PaidAt,
		ShippedAt:        data.ShippedAt,
		DeliveredAt:      data.DeliveredAt,
		CancelledAt:      data.CancelledAt,
		Items:            items,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toAllocationDomains(models []model.OrderItemAllocationModel) []entity.StockAllocation {
	if len(models) == 0 {
		return nil
	}

	allocations := make([]entity.StockAllocation, 0, len(models))
	for _, m := range models {
		allocations = append(allocations, entity.StockAllocation{
			LocationID: m.LocationID,
			Quantity:   m.Quantity,
		})
	}

	return allocations
}
