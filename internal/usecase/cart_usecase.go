package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineView is a cart line joined with catalog data.
type CartLineView struct {
	VariantID   uuid.UUID       `json:"variant_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	ImageURL    string          `json:"image_url"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Available   int             `json:"available"`
}

// CartView is what the storefront renders for a cart.
type CartView struct {
	CartID    *uuid.UUID      `json:"cart_id"`
	Lines     []CartLineView  `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartSummary adds the delivery quote and total for a region.
type CartSummary struct {
	CartView
	Delivery *entity.DeliveryQuote `json:"delivery"`
	Total    decimal.Decimal       `json:"total"`
}

// CartUsecase defines the interface for cart use cases
type CartUsecase interface {
	// GetCart returns the identity's cart; an identity without a cart gets an empty view
	GetCart(ctx context.Context, identity entity.Identity) (*CartView, error)

	// AddItem adds qty units of a variant, incrementing an existing line
	AddItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID, qty int) (*CartView, error)

	// UpdateItem sets the quantity of a line; zero removes it
	UpdateItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID, qty int) (*CartView, error)

	// RemoveItem deletes the line for a variant
	RemoveItem(ctx context.Context, identity entity.Identity, variantID uuid.UUID) (*CartView, error)

	// Summary prices the cart including delivery to region
	Summary(ctx context.Context, identity entity.Identity, region string) (*CartSummary, error)

	// ReclaimExpiredCarts deletes carts past their expiry
	ReclaimExpiredCarts(ctx context.Context) (int64, error)
}
