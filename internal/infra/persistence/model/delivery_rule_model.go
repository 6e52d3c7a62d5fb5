package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryRuleModel is the GORM-specific struct for the 'delivery_rules' table.
type DeliveryRuleModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Region    string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	BaseFee   decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	FreeAbove *decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinDays   int              `gorm:"not null;default:1"`
	MaxDays   int              `gorm:"not null;default:3"`
	IsActive  bool             `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRuleModel) TableName() string {
	return "delivery_rules"
}
