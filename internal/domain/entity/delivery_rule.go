// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryRule prices delivery to one region.
type DeliveryRule struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the rule.
	Region    string           `json:"region"`     // Region name, matched case-insensitively.
	BaseFee   decimal.Decimal  `json:"base_fee"`   // Fee charged below the threshold.
	FreeAbove *decimal.Decimal `json:"free_above"` // Subtotal at or above which delivery is free; nil disables.
	MinDays   int              `json:"min_days"`   // Earliest delivery estimate in days.
	MaxDays   int              `json:"max_days"`   // Latest delivery estimate in days.
	IsActive  bool             `json:"is_active"`  // Inactive rules are ignored.
	UpdatedAt time.Time        `json:"updated_at"` // Timestamp of the last modification.
}

// Fee returns the delivery fee for a subtotal under this rule.
func (r *DeliveryRule) Fee(subtotal decimal.Decimal) decimal.Decimal {
	if r.FreeAbove != nil && subtotal.GreaterThanOrEqual(*r.FreeAbove) {
		return decimal.Zero
	}

	return r.BaseFee
}

// DeliveryQuote is the fee and estimate for a region and subtotal.
type DeliveryQuote struct {
	Region   string          `json:"region"`   // Region quoted.
	Fee      decimal.Decimal `json:"fee"`      // Fee to charge.
	MinDays  int             `json:"min_days"` // Earliest delivery estimate in days.
	MaxDays  int             `json:"max_days"` // Latest delivery estimate in days.
	Fallback bool            `json:"fallback"` // True when no rule matched and the flat fallback applied.
}
