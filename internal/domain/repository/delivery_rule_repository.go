// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeliveryRuleNotFound is returned when no active rule exists for a region.
var ErrDeliveryRuleNotFound = errors.New("delivery rule not found")

// DeliveryRuleRepository reads the per-region delivery fee table.
type DeliveryRuleRepository interface {
	// FindRuleByRegion returns the active rule for a region, matched case-insensitively.
	FindRuleByRegion(ctx context.Context, region string) (*entity.DeliveryRule, error)

	// ListActiveRules returns every active rule ordered by region.
	ListActiveRules(ctx context.Context) ([]*entity.DeliveryRule, error)

	// UpsertRule creates or replaces the rule for its region.
	UpsertRule(ctx context.Context, rule *entity.DeliveryRule) error
}
