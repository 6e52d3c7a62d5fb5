// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for stock persistence.
var (
	// ErrStockRecordNotFound is returned when no stock row exists for a (variant, location) pair.
	ErrStockRecordNotFound = errors.New("stock record not found")
	// ErrStockCountersViolated is returned when a release or commit would push reserved or quantity below zero.
	ErrStockCountersViolated = errors.New("stock counters would be violated")
)

// StockRepository is the stock ledger. Every mutation is a single conditional update on one row.
// The ledger does not deduplicate calls; the order engine calls each mutation at most once per order item.
type StockRepository interface {
	// FindByVariants returns all stock rows for the given variants across every location.
	FindByVariants(ctx context.Context, variantIDs []uuid.UUID) ([]*entity.StockRecord, error)

	// CreateStockRecord persists a new stock row.
	CreateStockRecord(ctx context.Context, record *entity.StockRecord) error

	// TryReserve increments reserved by qty only if quantity - reserved >= qty.
	// It reports false, without error, when stock is insufficient.
	TryReserve(ctx context.Context, variantID, locationID uuid.UUID, qty int) (bool, error)

	// Release decrements reserved by qty.
	Release(ctx context.Context, variantID, locationID uuid.UUID, qty int) error

	// Commit decrements both reserved and quantity by qty.
	Commit(ctx context.Context, variantID, locationID uuid.UUID, qty int) error

	// Restore increments quantity by qty, reversing an earlier Commit.
	Restore(ctx context.Context, variantID, locationID uuid.UUID, qty int) error
}
