package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// Exactly one of CustomerID and SessionToken is set.
type CartModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	SessionToken *string         `gorm:"type:varchar(255);uniqueIndex"`
	ExpiresAt    time.Time       `gorm:"not null;index"`
	Items        []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	VariantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
