// Package delivery holds the inbound transports of the storefront.
package delivery

import "context"

// Delivery is a long-running inbound server started by a cmd binary.
type Delivery interface {
	Serve(ctx context.Context) error
}
