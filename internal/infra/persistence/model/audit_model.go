package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
type AuditLogModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ActorID    *uuid.UUID        `gorm:"type:uuid;index"`
	Action     string            `gorm:"type:varchar(50);not null"`
	EntityType string            `gorm:"type:varchar(50);not null"`
	EntityID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	OldValue   datatypes.JSONMap `gorm:"type:jsonb"`
	NewValue   datatypes.JSONMap `gorm:"type:jsonb"`
	IPAddress  string            `gorm:"type:varchar(64)"`
	UserAgent  string            `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
