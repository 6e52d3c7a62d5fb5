package pubsub

import (
	"storefront/internal/domain/entity"
)

// eventAttributes are attached to every transport message for filtering and tracing.
func eventAttributes(event *entity.OrderEvent) map[string]string {
	return map[string]string{
		"event_id":     event.EventID.String(),
		"event_type":   string(event.Type),
		"order_id":     event.OrderID.String(),
		"order_number": event.OrderNumber,
	}
}
