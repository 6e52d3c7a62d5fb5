package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartCache caches cart reads per identity. A miss returns (nil, nil).
type CartCache interface {
	GetCart(ctx context.Context, identity entity.Identity) (*entity.Cart, error)
	SetCart(ctx context.Context, identity entity.Identity, cart *entity.Cart) error
	InvalidateCart(ctx context.Context, identity entity.Identity) error
}
