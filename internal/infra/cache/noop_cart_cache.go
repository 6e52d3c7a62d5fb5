package cache

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type noopCartCache struct{}

// NewNoopCartCache returns a CartCache that always misses.
func NewNoopCartCache() service.CartCache {
	return noopCartCache{}
}

func (noopCartCache) GetCart(context.Context, entity.Identity) (*entity.Cart, error) {
	return nil, nil
}

func (noopCartCache) SetCart(context.Context, entity.Identity, *entity.Cart) error {
	return nil
}

func (noopCartCache) InvalidateCart(context.Context, entity.Identity) error {
	return nil
}
