package model

import (
	"time"

	"github.com/google/uuid"
)

// StockLocationModel is the GORM-specific struct for the 'stock_locations' table.
type StockLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockLocationModel) TableName() string {
	return "stock_locations"
}

// StockLevelModel is the GORM-specific struct for the 'stock_levels' table.
// A CHECK constraint keeps 0 <= reserved <= quantity.
type StockLevelModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VariantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_levels_variant_location"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_levels_variant_location"`
	Quantity   int       `gorm:"not null;default:0"`
	Reserved   int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockLevelModel) TableName() string {
	return "stock_levels"
}
