package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Shipping and contact columns are denormalised so they survive address book edits.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber      string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID       *uuid.UUID `gorm:"type:uuid;index"`
	SessionToken     *string    `gorm:"type:varchar(255)"`
	ContactName      string     `gorm:"type:varchar(255);not null"`
	ContactEmail     string     `gorm:"type:varchar(255);not null"`
	ContactPhone     string     `gorm:"type:varchar(50);not null"`
	ShippingRegion   string     `gorm:"type:varchar(100);not null"`
	ShippingCity     string     `gorm:"type:varchar(100);not null"`
	ShippingStreet   string     `gorm:"type:varchar(255)"`
	ShippingLandmark string     `gorm:"type:varchar(255)"`
	ShippingGPSCode  string     `gorm:"column:shipping_gps_code;type:varchar(50)"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`

	Status        string `gorm:"type:varchar(30);not null;index"`
	PaymentMethod string `gorm:"type:varchar(30);not null"`
	Notes         string `gorm:"type:text"`

	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	SKU         string          `gorm:"column:sku;type:varchar(100);not null"`
	ImageURL    string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Allocations []OrderItemAllocationModel `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderItemAllocationModel is the GORM-specific struct for the 'order_item_allocations' table.
type OrderItemAllocationModel struct {
	OrderItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemAllocationModel) TableName() string {
	return "order_item_allocations"
}

// OrderStatusHistoryModel is the GORM-specific struct for the 'order_status_history' table.
type OrderStatusHistoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status    string     `gorm:"type:varchar(30);not null"`
	Note      string     `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}
