package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, nil),
	})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db, logger))

	return db
}

func seedStock(t *testing.T, db *gorm.DB, quantity int) (variantID, locationID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	productID := uuid.New()
	require.NoError(t, db.Exec(`INSERT INTO products (id, name, slug) VALUES (?, ?, ?)`,
		productID, "Kente Scarf", "kente-scarf-"+productID.String()[:8]).Error)

	variant := &entity.Variant{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Gold",
		SKU:       "KS-" + productID.String()[:8],
		Price:     decimal.RequireFromString("120.00"),
		IsActive:  true,
	}
	require.NoError(t, NewVariantRepository(db).CreateVariant(ctx, variant))

	locationID = uuid.New()
	require.NoError(t, db.Exec(`INSERT INTO stock_locations (id, name, code) VALUES (?, ?, ?)`,
		locationID, "Accra Central", "ACC-"+locationID.String()[:8]).Error)

	require.NoError(t, NewStockRepository(db).CreateStockRecord(ctx, &entity.StockRecord{
		VariantID:  variant.ID,
		LocationID: locationID,
		Quantity:   quantity,
	}))

	return variant.ID, locationID
}

func loadStock(t *testing.T, db *gorm.DB, variantID uuid.UUID) *entity.StockRecord {
	t.Helper()

	records, err := NewStockRepository(db).FindByVariants(context.Background(), []uuid.UUID{variantID})
	require.NoError(t, err)
	require.Len(t, records, 1)

	return records[0]
}

func TestStockRepository_CounterLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()
	variantID, locationID := seedStock(t, db, 5)

	ok, err := repo.TryReserve(ctx, variantID, locationID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TryReserve(ctx, variantID, locationID, 3)
	require.NoError(t, err)
	assert.False(t, ok, "only 2 units remain available")

	require.NoError(t, repo.Release(ctx, variantID, locationID, 1))
	require.NoError(t, repo.Commit(ctx, variantID, locationID, 2))

	stock := loadStock(t, db, variantID)
	assert.Equal(t, 3, stock.Quantity)
	assert.Equal(t, 0, stock.Reserved)

	require.NoError(t, repo.Restore(ctx, variantID, locationID, 2))
	assert.Equal(t, 5, loadStock(t, db, variantID).Quantity)
}

func TestStockRepository_GuardsCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()
	variantID, locationID := seedStock(t, db, 2)

	err := repo.Release(ctx, variantID, locationID, 1)
	assert.ErrorIs(t, err, repository.ErrStockCountersViolated)

	err = repo.Commit(ctx, variantID, locationID, 1)
	assert.ErrorIs(t, err, repository.ErrStockCountersViolated)

	err = repo.Release(ctx, variantID, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrStockRecordNotFound)

	err = repo.CreateStockRecord(ctx, &entity.StockRecord{
		VariantID:  variantID,
		LocationID: locationID,
		Quantity:   -1,
	})
	assert.Error(t, err)
}

func TestStockRepository_ConcurrentReservationsNeverOversell(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()
	variantID, locationID := seedStock(t, db, 10)

	const attempts = 25
	results := make(chan bool, attempts)
	for range attempts {
		go func() {
			ok, err := repo.TryReserve(ctx, variantID, locationID, 1)
			results <- err == nil && ok
		}()
	}

	granted := 0
	for range attempts {
		if <-results {
			granted++
		}
	}

	assert.Equal(t, 10, granted)
	assert.Equal(t, 10, loadStock(t, db, variantID).Reserved)
}
