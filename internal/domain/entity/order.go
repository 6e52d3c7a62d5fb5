// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusPacked         OrderStatus = "PACKED"
	OrderStatusDispatched     OrderStatus = "DISPATCHED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusRefunded       OrderStatus = "REFUNDED"
)

// fulfilmentChain is the forward path of an order; CANCELLED and REFUNDED are side exits.
var fulfilmentChain = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusPacked,
	OrderStatusDispatched,
	OrderStatusDelivered,
	OrderStatusCompleted,
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded || s.rank() >= 0
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Forward moves along the fulfilment chain may skip steps, except that an unpaid order must pass through PAID;
// terminal states never move.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() || s == next {
		return false
	}

	if next == OrderStatusCancelled || next == OrderStatusRefunded {
		return true
	}
	if s == OrderStatusPendingPayment {
		return next == OrderStatusPaid
	}

	return next.rank() > s.rank()
}

func (s OrderStatus) rank() int {
	for i, status := range fulfilmentChain {
		if status == s {
			return i
		}
	}

	return -1
}

// ShippingAddress is denormalised onto the order so it survives address book edits.
type ShippingAddress struct {
	Region   string `json:"region"`   // Delivery region, used for the fee rule lookup.
	City     string `json:"city"`     // City or town.
	Street   string `json:"street"`   // Street address line.
	Landmark string `json:"landmark"` // Nearby landmark for the rider.
	GPSCode  string `json:"gps_code"` // Ghana Post GPS digital address.
}

// ContactInfo holds the customer contact used for receipts.
type ContactInfo struct {
	Name  string `json:"name"`  // Full name.
	Email string `json:"email"` // Receipt email address.
	Phone string `json:"phone"` // Phone number for SMS updates.
}

// Order is the central aggregate of the fulfilment flow.
type Order struct {
	ID            uuid.UUID            `json:"id"`             // The Global Unique Identifier (GUID) for the order.
	OrderNumber   string               `json:"order_number"`   // Human readable unique number.
	CustomerID    *uuid.UUID           `json:"customer_id"`    // Owning customer, nil for guest orders.
	SessionToken  *string              `json:"session_token"`  // Anonymous session that placed a guest order.
	Contact       ContactInfo          `json:"contact"`        // Customer or guest contact details.
	Shipping      ShippingAddress      `json:"shipping"`       // Delivery address.
	Subtotal      decimal.Decimal      `json:"subtotal"`       // Sum of line totals.
	DeliveryFee   decimal.Decimal      `json:"delivery_fee"`   // Fee from the region rule.
	Discount      decimal.Decimal      `json:"discount"`       // Discount applied.
	Tax           decimal.Decimal      `json:"tax"`            // Tax charged.
	Total         decimal.Decimal      `json:"total"`          // Amount due.
	Currency      string               `json:"currency"`       // ISO currency code.
	Status        OrderStatus          `json:"status"`         // Current lifecycle state.
	PaymentMethod PaymentMethod        `json:"payment_method"` // Method chosen at checkout.
	Notes         string               `json:"notes"`          // Optional customer notes.
	PaidAt        *time.Time           `json:"paid_at"`        // Set once when payment succeeds.
	ShippedAt     *time.Time           `json:"shipped_at"`     // Set once when dispatched.
	DeliveredAt   *time.Time           `json:"delivered_at"`   // Set once when delivered.
	CancelledAt   *time.Time           `json:"cancelled_at"`   // Set once when cancelled.
	Items         []OrderItem          `json:"items"`          // Line snapshots.
	History       []OrderStatusHistory `json:"history"`        // Status trail, newest first.
	CreatedAt     time.Time            `json:"created_at"`     // Timestamp of when the order was placed.
	UpdatedAt     time.Time            `json:"updated_at"`     // Timestamp of the last modification.
}

// IsPaid reports whether payment was ever confirmed for the order.
func (o *Order) IsPaid() bool {
	return o.PaidAt != nil
}

// MarkStatusTimestamp sets the timestamp tied to a status if it is not set yet.
func (o *Order) MarkStatusTimestamp(status OrderStatus, now time.Time) {
	setOnce := func(ts **time.Time) {
		if *ts == nil {
			t := now
			*ts = &t
		}
	}

	switch status {
	case OrderStatusPaid:
		setOnce(&o.PaidAt)
	case OrderStatusDispatched:
		setOnce(&o.ShippedAt)
	case OrderStatusDelivered:
		setOnce(&o.DeliveredAt)
	case OrderStatusCancelled:
		setOnce(&o.CancelledAt)
	}
}

// StockAllocation is the part of an item's quantity reserved at one location.
type StockAllocation struct {
	LocationID uuid.UUID `json:"location_id"` // Location holding the units.
	Quantity   int       `json:"quantity"`    // Units reserved there.
}

// OrderItem is an immutable snapshot of a cart line at checkout.
type OrderItem struct {
	ID          uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the item.
	OrderID     uuid.UUID         `json:"order_id"`     // The order this item belongs to.
	VariantID   uuid.UUID         `json:"variant_id"`   // The variant purchased.
	Allocations []StockAllocation `json:"allocations"`  // Locations holding the reservation, empty until reserved.
	ProductName string            `json:"product_name"` // Name snapshot.
	SKU         string            `json:"sku"`          // SKU snapshot.
	ImageURL    string            `json:"image_url"`    // Image snapshot.
	UnitPrice   decimal.Decimal   `json:"unit_price"`   // Price snapshot.
	Quantity    int               `json:"quantity"`     // Units ordered.
	LineTotal   decimal.Decimal   `json:"line_total"`   // UnitPrice x Quantity.
}

// OrderStatusHistory is one append-only entry of an order's status trail.
type OrderStatusHistory struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the entry.
	OrderID   uuid.UUID   `json:"order_id"`   // The order this entry belongs to.
	Status    OrderStatus `json:"status"`     // Status entered.
	Note      string      `json:"note"`       // Free text explanation.
	CreatedBy *uuid.UUID  `json:"created_by"` // Operator who made the change, nil for system changes.
	CreatedAt time.Time   `json:"created_at"` // Timestamp of the transition.
}

// NewStatusHistory builds a history entry for an order.
func NewStatusHistory(orderID uuid.UUID, status OrderStatus, note string, createdBy *uuid.UUID, now time.Time) *OrderStatusHistory {
	return &OrderStatusHistory{
		ID:        uuid.New(),
		OrderID:   orderID,
		Status:    status,
		Note:      note,
		CreatedBy: createdBy,
		CreatedAt: now,
	}
}
