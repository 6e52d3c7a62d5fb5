package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// deliveryFeeService implements the DeliveryFeeUsecase interface.
type deliveryFeeService struct {
	ruleRepo    repository.DeliveryRuleRepository
	fallbackFee decimal.Decimal
	logger      *slog.Logger
}

// DeliveryFeeServiceParams holds dependencies for DeliveryFeeService, injected by Fx.
type DeliveryFeeServiceParams struct {
	fx.In

	RuleRepo repository.DeliveryRuleRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDeliveryFeeService is the constructor for deliveryFeeService.
func NewDeliveryFeeService(params DeliveryFeeServiceParams) usecase.DeliveryFeeUsecase {
	return &deliveryFeeService{
		ruleRepo:    params.RuleRepo,
		fallbackFee: params.Config.Delivery.FallbackFee,
		logger:      params.Logger,
	}
}

// Quote never fails for an unknown region; storage errors still propagate.
func (srv *deliveryFeeService) Quote(ctx context.Context, region string, subtotal decimal.Decimal) (*entity.DeliveryQuote, error) {
	return quoteDelivery(ctx, srv.ruleRepo, region, subtotal, srv.fallbackFee, deliverycontext.GetLoggerOrDefault(ctx, srv.logger))
}

// ListRules returns every active delivery rule.
func (srv *deliveryFeeService) ListRules(ctx context.Context) ([]*entity.DeliveryRule, error) {
	rules, err := srv.ruleRepo.ListActiveRules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery rules")
	}

	return rules, nil
}

// quoteDelivery is shared with checkout so both price delivery the same way.
func quoteDelivery(
	ctx context.Context,
	ruleRepo repository.DeliveryRuleRepository,
	region string,
	subtotal decimal.Decimal,
	fallbackFee decimal.Decimal,
	logger *slog.Logger,
) (*entity.DeliveryQuote, error) {
	rule, err := ruleRepo.FindRuleByRegion(ctx, region)
	if errors.Is(err, repository.ErrDeliveryRuleNotFound) {
		logger.Debug("No delivery rule for region, using fallback fee",
			slog.String("region", region),
			slog.String("fee", fallbackFee.StringFixed(2)),
		)

		return &entity.DeliveryQuote{
			Region:   region,
			Fee:      fallbackFee,
			MinDays:  defaultMinDeliveryDays,
			MaxDays:  defaultMaxDeliveryDays,
			Fallback: true,
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery rule")
	}

	return &entity.DeliveryQuote{
		Region:  rule.Region,
		Fee:     rule.Fee(subtotal),
		MinDays: rule.MinDays,
		MaxDays: rule.MaxDays,
	}, nil
}
