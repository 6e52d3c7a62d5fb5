// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when no cart exists for an identity.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartLineNotFound is returned when a cart has no line for a variant.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrDuplicateCart is returned when a cart already exists for an identity.
	ErrDuplicateCart = errors.New("cart already exists")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindCartByIdentity returns the identity's cart with its lines.
	FindCartByIdentity(ctx context.Context, identity entity.Identity) (*entity.Cart, error)

	// FindCartByID returns a cart with its lines.
	FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// CreateCart persists a new empty cart.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// AddLine inserts a line or, if the variant is already in the cart, increments its quantity.
	AddLine(ctx context.Context, cartID, variantID uuid.UUID, qty int) (*entity.CartLine, error)

	// SetLineQuantity overwrites the quantity of an existing line.
	SetLineQuantity(ctx context.Context, cartID, variantID uuid.UUID, qty int) error

	// RemoveLine deletes the line for a variant.
	RemoveLine(ctx context.Context, cartID, variantID uuid.UUID) error

	// ExtendCart moves the expiry of a cart, used when an expired cart is reused.
	ExtendCart(ctx context.Context, cartID uuid.UUID, expiresAt time.Time) error

	// ClearLines deletes every line of a cart, keeping the cart row.
	ClearLines(ctx context.Context, cartID uuid.UUID) error

	// DeleteExpiredCarts deletes carts whose expiry is before the given time and returns how many were removed.
	DeleteExpiredCarts(ctx context.Context, before time.Time) (int64, error)
}
