package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DeliveryFeeUsecase prices delivery per region
type DeliveryFeeUsecase interface {
	// Quote returns the fee for a region and subtotal; unknown regions get the fallback fee
	Quote(ctx context.Context, region string, subtotal decimal.Decimal) (*entity.DeliveryQuote, error)

	// ListRules returns every active delivery rule
	ListRules(ctx context.Context) ([]*entity.DeliveryRule, error)
}
