// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed what on an entity.
type AuditLog struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the entry.
	ActorID    *uuid.UUID     `json:"actor_id"`    // Customer or operator who acted, nil for the system.
	Action     string         `json:"action"`      // Action name, e.g. ORDER_CREATED.
	EntityType string         `json:"entity_type"` // Kind of entity affected.
	EntityID   uuid.UUID      `json:"entity_id"`   // Entity affected.
	OldValue   map[string]any `json:"old_value"`   // State before the change.
	NewValue   map[string]any `json:"new_value"`   // State after the change.
	IPAddress  string         `json:"ip_address"`  // Caller IP.
	UserAgent  string         `json:"user_agent"`  // Caller user agent.
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of the entry.
}

// Audit actions
const (
	AuditActionOrderCreated       = "ORDER_CREATED"
	AuditActionOrderStatusUpdated = "ORDER_STATUS_UPDATED"
)

// RequestMeta carries caller details used for audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}
