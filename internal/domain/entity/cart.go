// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart holds the lines a customer or anonymous session intends to buy.
type Cart struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the cart.
	CustomerID   *uuid.UUID `json:"customer_id"`   // Owning customer, mutually exclusive with SessionToken.
	SessionToken *string    `json:"session_token"` // Owning anonymous session, mutually exclusive with CustomerID.
	ExpiresAt    time.Time  `json:"expires_at"`    // After this instant the cart may be reclaimed.
	Lines        []CartLine `json:"lines"`         // Line items, unique per variant.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when the cart was created.
	UpdatedAt    time.Time  `json:"updated_at"`    // Timestamp of the last modification.
}

// CartLine is one variant and quantity in a cart.
type CartLine struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the line.
	CartID    uuid.UUID `json:"cart_id"`    // The cart this line belongs to.
	VariantID uuid.UUID `json:"variant_id"` // The variant being purchased.
	Quantity  int       `json:"quantity"`   // Positive number of units.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the line was added.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// NewCart creates an empty cart owned by the given identity.
func NewCart(identity Identity, now time.Time, ttl time.Duration) *Cart {
	cart := &Cart{
		ID:        uuid.New(),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if identity.IsCustomer() {
		id := *identity.CustomerID
		cart.CustomerID = &id
	} else {
		token := identity.SessionToken
		cart.SessionToken = &token
	}

	return cart
}

// IsExpired reports whether the cart has passed its expiry.
func (c *Cart) IsExpired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for a variant, if present.
func (c *Cart) Line(variantID uuid.UUID) (*CartLine, bool) {
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			return &c.Lines[i], true
		}
	}

	return nil, false
}

// VariantIDs returns the distinct variants in the cart, in line order.
func (c *Cart) VariantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Lines))
	for _, line := range c.Lines {
		ids = append(ids, line.VariantID)
	}

	return ids
}
