// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variant is a purchasable version of a product.
type Variant struct {
	ID             uuid.UUID        `json:"id"`               // The Global Unique Identifier (GUID) for the variant.
	ProductID      uuid.UUID        `json:"product_id"`       // The product this variant belongs to.
	ProductName    string           `json:"product_name"`     // Product name at read time.
	Name           string           `json:"name"`             // Variant label, e.g. "Red / XL".
	SKU            string           `json:"sku"`              // Stock keeping unit.
	Price          decimal.Decimal  `json:"price"`            // Current unit price.
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"` // Optional strikethrough price.
	ImageURL       string           `json:"image_url"`        // Primary product image.
	IsActive       bool             `json:"is_active"`        // Inactive variants cannot be bought.
}

// DisplayName joins the product and variant names for order snapshots.
func (v *Variant) DisplayName() string {
	if v.Name == "" || v.Name == v.ProductName {
		return v.ProductName
	}

	return v.ProductName + " - " + v.Name
}
