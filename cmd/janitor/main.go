// Command janitor reclaims expired carts and cancels stale unpaid orders.
// It runs once and exits, so it is meant to be scheduled (cron, Cloud Scheduler).
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/cache"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/util"

	"go.uber.org/fx"
)

func main() {
	var (
		cfg     *config.Config
		logger  *slog.Logger
		cartUC  usecase.CartUsecase
		orderUC usecase.OrderUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			impl.NewCartService,
			impl.NewOrderService,
		),
		cache.Module,
		fx.Populate(&cfg, &logger, &cartUC, &orderUC),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to start janitor", slog.Any("error", err))
		os.Exit(1)
	}

	runErr := run(context.Background(), cfg, logger, cartUC, orderUC)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop janitor", slog.Any("error", err))
	}

	if runErr != nil {
		logger.Error("Janitor run failed", slog.Any("error", runErr))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, cartUC usecase.CartUsecase, orderUC usecase.OrderUsecase) error {
	start := time.Now()

	carts, cartErr := cartUC.ReclaimExpiredCarts(ctx)
	if cartErr != nil {
		logger.Error("Failed to reclaim expired carts", slog.Any("error", cartErr))
	}

	orders, orderErr := orderUC.ExpireStalePendingOrders(ctx, cfg.Janitor.StaleOrderAge)
	if orderErr != nil {
		logger.Error("Failed to expire stale orders", slog.Any("error", orderErr))
	}

	logger.Info("Janitor finished",
		slog.Int64("carts_reclaimed", carts),
		slog.Int("orders_expired", orders),
		slog.String("stale_order_age", util.FormatDuration(cfg.Janitor.StaleOrderAge)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return errors.Join(cartErr, orderErr)
}
