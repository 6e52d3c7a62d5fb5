package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NotificationUsecase sends customer messages for order events
type NotificationUsecase interface {
	// HandleOrderEvent sends every channel for an event; a failing channel does not stop the others.
	// It returns an error only when the order cannot be loaded.
	HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error
}
