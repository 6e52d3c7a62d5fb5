package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Provider          string          `gorm:"type:varchar(30);not null"`
	Method            string          `gorm:"type:varchar(30);not null"`
	Status            string          `gorm:"type:varchar(20);not null;index"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"type:varchar(3);not null"`
	Reference         string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	ProviderReference *string         `gorm:"type:varchar(100);index"`
	IdempotencyKey    string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	FailureReason     string          `gorm:"type:text"`
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
