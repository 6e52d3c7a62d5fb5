package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStock(t *testing.T, repo repository.StockRepository, qty int) (variantID, locationID uuid.UUID) {
	t.Helper()

	variantID, locationID = uuid.New(), uuid.New()
	require.NoError(t, repo.CreateStockRecord(context.Background(), &entity.StockRecord{
		VariantID:  variantID,
		LocationID: locationID,
		Quantity:   qty,
	}))

	return variantID, locationID
}

func stockRecord(t *testing.T, repo repository.StockRepository, variantID uuid.UUID) *entity.StockRecord {
	t.Helper()

	records, err := repo.FindByVariants(context.Background(), []uuid.UUID{variantID})
	require.NoError(t, err)
	require.Len(t, records, 1)

	return records[0]
}

func TestStockRepository_Ledger(t *testing.T) {
	repo := NewRepositoryFactory(NewStore()).StockRepo()
	ctx := context.Background()
	variantID, locationID := seedStock(t, repo, 5)

	ok, err := repo.TryReserve(ctx, variantID, locationID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TryReserve(ctx, variantID, locationID, 3)
	require.NoError(t, err)
	assert.False(t, ok, "only two units remain available")

	require.NoError(t, repo.Release(ctx, variantID, locationID, 1))
	require.NoError(t, repo.Commit(ctx, variantID, locationID, 2))

	rec := stockRecord(t, repo, variantID)
	assert.Equal(t, 3, rec.Quantity)
	assert.Equal(t, 0, rec.Reserved)

	assert.ErrorIs(t, repo.Release(ctx, variantID, locationID, 1), repository.ErrStockCountersViolated)
	assert.ErrorIs(t, repo.Commit(ctx, variantID, locationID, 1), repository.ErrStockCountersViolated)
	assert.ErrorIs(t, repo.Release(ctx, uuid.New(), locationID, 1), repository.ErrStockRecordNotFound)

	require.NoError(t, repo.Restore(ctx, variantID, locationID, 2))
	assert.Equal(t, 5, stockRecord(t, repo, variantID).Quantity)

	ok, err = repo.TryReserve(ctx, uuid.New(), locationID, 1)
	require.NoError(t, err)
	assert.False(t, ok, "unknown rows never reserve")
}

func TestStockRepository_ConcurrentReserve(t *testing.T) {
	repo := NewRepositoryFactory(NewStore()).StockRepo()
	variantID, locationID := seedStock(t, repo, 7)

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TryReserve(context.Background(), variantID, locationID, 1)
			assert.NoError(t, err)
			if ok {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(7), won.Load())
	rec := stockRecord(t, repo, variantID)
	assert.Equal(t, 7, rec.Reserved)
	assert.Equal(t, 0, rec.Available())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	repos := NewRepositoryFactory(store)
	txManager := NewTransactionManager(store)
	variantID, locationID := seedStock(t, repos.StockRepo(), 4)
	errBoom := errors.New("boom")

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		ok, err := factory.StockRepo().TryReserve(context.Background(), variantID, locationID, 4)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, factory.OutboxRepo().EnqueueEvent(context.Background(), &entity.OutboxEvent{
			ID:        uuid.New(),
			EventType: string(entity.OrderEventPaid),
		}))

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	assert.Equal(t, 0, stockRecord(t, repos.StockRepo(), variantID).Reserved)
	events, err := repos.OutboxRepo().FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	store := NewStore()
	repos := NewRepositoryFactory(store)
	txManager := NewTransactionManager(store)
	variantID, locationID := seedStock(t, repos.StockRepo(), 4)

	assert.Panics(t, func() {
		_ = txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			_, _ = factory.StockRepo().TryReserve(context.Background(), variantID, locationID, 2)
			panic("unexpected")
		})
	})

	assert.Equal(t, 0, stockRecord(t, repos.StockRepo(), variantID).Reserved)
}

func TestTransactionManager_CancelledContext(t *testing.T) {
	txManager := NewTransactionManager(NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := txManager.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPaymentRepository_SuccessIsFinal(t *testing.T) {
	repos := NewRepositoryFactory(NewStore())
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), OrderNumber: "IG-1", Status: entity.OrderStatusPendingPayment}
	require.NoError(t, repos.OrderRepo().CreateOrder(ctx, order))
	payment := &entity.Payment{
		ID:             uuid.New(),
		OrderID:        order.ID,
		Status:         entity.PaymentStatusPending,
		Reference:      "PAY-IG-1-1",
		IdempotencyKey: uuid.NewString(),
	}
	require.NoError(t, repos.PaymentRepo().CreatePayment(ctx, payment))

	duplicate := *payment
	duplicate.ID = uuid.New()
	duplicate.IdempotencyKey = uuid.NewString()
	assert.ErrorIs(t, repos.PaymentRepo().CreatePayment(ctx, &duplicate), repository.ErrDuplicatePaymentReference)

	ref := "PRV-9"
	require.NoError(t, repos.PaymentRepo().MarkPaymentSucceeded(ctx, payment.ID, &ref, payment.CreatedAt))
	assert.ErrorIs(t, repos.PaymentRepo().MarkPaymentSucceeded(ctx, payment.ID, &ref, payment.CreatedAt), repository.ErrPaymentAlreadySettled)
	assert.ErrorIs(t, repos.PaymentRepo().MarkPaymentFailed(ctx, payment.ID, "late failure"), repository.ErrPaymentAlreadySettled)

	stored, err := repos.PaymentRepo().FindPaymentByReference(ctx, payment.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, stored.Status)
	assert.Equal(t, "PRV-9", *stored.ProviderReference)
}

func TestOrderRepository_StatusCompareAndSwap(t *testing.T) {
	repos := NewRepositoryFactory(NewStore())
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), OrderNumber: "IG-2", Status: entity.OrderStatusPendingPayment}
	require.NoError(t, repos.OrderRepo().CreateOrder(ctx, order))
	assert.ErrorIs(t, repos.OrderRepo().CreateOrder(ctx, &entity.Order{ID: uuid.New(), OrderNumber: "IG-2"}), repository.ErrDuplicateOrderNumber)

	order.Status = entity.OrderStatusPaid
	require.NoError(t, repos.OrderRepo().UpdateOrderStatus(ctx, order, entity.OrderStatusPendingPayment))

	order.Status = entity.OrderStatusCancelled
	err := repos.OrderRepo().UpdateOrderStatus(ctx, order, entity.OrderStatusPendingPayment)
	assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)

	stored, err := repos.OrderRepo().FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, stored.Status)
}
