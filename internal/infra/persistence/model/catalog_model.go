package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Only the columns the fulfilment engine reads are mapped.
type ProductModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
type ProductVariantModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Product        ProductModel     `gorm:"foreignKey:ProductID"`
	Name           string           `gorm:"type:varchar(255);not null"`
	SKU            string           `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Price          decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	CompareAtPrice *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL       string           `gorm:"type:text"`
	IsActive       bool             `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
