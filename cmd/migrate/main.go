// Command migrate applies or rolls back the embedded schema migrations.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to roll back instead of migrating up")
	flag.Parse()

	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	var err error
	if *down > 0 {
		err = postgres.RollbackMigrations(db, *down)
		if err == nil {
			logger.Info("Migrations rolled back", slog.Int("steps", *down))
		}
	} else {
		err = postgres.RunMigrations(db, logger)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	_ = app.Stop(stopCtx)

	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}
