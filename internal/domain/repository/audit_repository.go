// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuditRepository appends audit log entries.
type AuditRepository interface {
	CreateAuditLog(ctx context.Context, log *entity.AuditLog) error
}
