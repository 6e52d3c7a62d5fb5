package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher defines the interface for publishing order events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes one order event for async processing
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
