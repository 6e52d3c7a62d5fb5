// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderEventType names an order lifecycle event.
type OrderEventType string

const (
	OrderEventPaid          OrderEventType = "order.paid"
	OrderEventPaymentFailed OrderEventType = "order.payment_failed"
	OrderEventDispatched    OrderEventType = "order.dispatched"
	OrderEventDelivered     OrderEventType = "order.delivered"
	OrderEventCancelled     OrderEventType = "order.cancelled"
)

// OrderEvent is the message published when an order changes state.
type OrderEvent struct {
	EventID     uuid.UUID      `json:"event_id"`     // Unique event identifier, stable across redeliveries.
	Type        OrderEventType `json:"type"`         // Event type.
	OrderID     uuid.UUID      `json:"order_id"`     // Order affected.
	OrderNumber string         `json:"order_number"` // Human readable order number.
	Status      OrderStatus    `json:"status"`       // Order status after the change.
	OccurredAt  time.Time      `json:"occurred_at"`  // When the change was committed.
}

// OutboxEvent is an order event waiting to be published.
type OutboxEvent struct {
	ID          uuid.UUID  `json:"id"`           // Same as the OrderEvent's EventID.
	EventType   string     `json:"event_type"`   // Event type.
	AggregateID uuid.UUID  `json:"aggregate_id"` // Order the event is about.
	Payload     []byte     `json:"payload"`      // JSON encoded OrderEvent.
	Attempts    int        `json:"attempts"`     // Failed publish attempts so far.
	LastError   string     `json:"last_error"`   // Error of the last failed attempt.
	PublishedAt *time.Time `json:"published_at"` // Set after a successful publish.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when the event was enqueued.
}

// EventForStatus returns the event emitted when an order enters status.
func EventForStatus(status OrderStatus) (OrderEventType, bool) {
	switch status {
	case OrderStatusPaid:
		return OrderEventPaid, true
	case OrderStatusDispatched:
		return OrderEventDispatched, true
	case OrderStatusDelivered:
		return OrderEventDelivered, true
	case OrderStatusCancelled:
		return OrderEventCancelled, true
	default:
		return "", false
	}
}
