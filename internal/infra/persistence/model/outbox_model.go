package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxEventModel is the GORM-specific struct for the 'outbox_events' table.
type OutboxEventModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key"`
	EventType   string         `gorm:"type:varchar(50);not null"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
	PublishedAt *time.Time     `gorm:"index"`
	CreatedAt   time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
