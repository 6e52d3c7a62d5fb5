// Package persistence selects the storage driver and provides the repositories to the fx graph.
package persistence

import (
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories that live outside any transaction.
type Repositories struct {
	fx.Out

	TxManager     repository.TransactionManager
	Stock         repository.StockRepository
	Carts         repository.CartRepository
	Variants      repository.VariantRepository
	DeliveryRules repository.DeliveryRuleRepository
	Orders        repository.OrderRepository
	Payments      repository.PaymentRepository
	Outbox        repository.OutboxRepository
	Devices       repository.DeviceRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	driver := strings.ToLower(params.Config.Storage.Driver)

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")

		store := memory.NewStore()

		return fromFactory(memory.NewTransactionManager(store), memory.NewRepositoryFactory(store)), nil
	case constants.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		if params.Config.Migrations != nil && params.Config.Migrations.AutoMigrate {
			if err := postgres.RunMigrations(db, params.Logger); err != nil {
				return Repositories{}, err
			}
		}

		return fromFactory(postgres.NewTransactionManager(db), postgres.NewRepositoryFactory(db)), nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func fromFactory(txManager repository.TransactionManager, factory repository.RepositoryFactory) Repositories {
	return Repositories{
		TxManager:     txManager,
		Stock:         factory.StockRepo(),
		Carts:         factory.CartRepo(),
		Variants:      factory.VariantRepo(),
		DeliveryRules: factory.DeliveryRuleRepo(),
		Orders:        factory.OrderRepo(),
		Payments:      factory.PaymentRepo(),
		Outbox:        factory.OutboxRepo(),
		Devices:       factory.DeviceRepo(),
	}
}
