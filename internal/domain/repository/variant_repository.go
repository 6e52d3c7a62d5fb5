// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVariantNotFound is returned when a variant is not found.
var ErrVariantNotFound = errors.New("variant not found")

// VariantRepository reads catalog variants. The catalog itself is owned elsewhere.
type VariantRepository interface {
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error)

	// FindVariantsByIDs returns the variants that exist; missing IDs are skipped.
	FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Variant, error)

	CreateVariant(ctx context.Context, variant *entity.Variant) error
}
