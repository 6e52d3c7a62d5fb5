package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Kente Scarf", 120, 2, 3)

	view, err := h.cart.AddItem(ctx, identity, variant, 2)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.True(t, decimal.NewFromInt(240).Equal(view.Subtotal))
	assert.Equal(t, 5, view.Lines[0].Available)

	view, err = h.cart.AddItem(ctx, identity, variant, 3)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1, "adding again increments the line")
	assert.Equal(t, 5, view.Lines[0].Quantity)

	_, err = h.cart.AddItem(ctx, identity, variant, 1)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	_, reserved := h.stockOf(t, variant)
	assert.Zero(t, reserved, "carts never reserve stock")
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	active := h.seedVariant(t, "Active", 10, 5)

	inactive := &entity.Variant{ID: uuid.New(), ProductName: "Retired", SKU: "SKU-Retired", Price: decimal.NewFromInt(5)}
	require.NoError(t, h.repos.VariantRepo().CreateVariant(ctx, inactive))

	tests := []struct {
		name      string
		identity  entity.Identity
		variantID uuid.UUID
		qty       int
		wantErr   error
	}{
		{name: "no identity", identity: entity.Identity{}, variantID: active, qty: 1, wantErr: domainerrors.ErrIdentityRequired},
		{name: "zero quantity", identity: sessionIdentity(), variantID: active, qty: 0, wantErr: domainerrors.ErrInvalidQuantity},
		{name: "unknown variant", identity: sessionIdentity(), variantID: uuid.New(), qty: 1, wantErr: domainerrors.ErrVariantNotFound},
		{name: "inactive variant", identity: sessionIdentity(), variantID: inactive.ID, qty: 1, wantErr: domainerrors.ErrVariantUnavailable},
		{name: "more than stocked", identity: sessionIdentity(), variantID: active, qty: 6, wantErr: domainerrors.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.cart.AddItem(ctx, tt.identity, tt.variantID, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	identity := entity.CustomerIdentity(uuid.New())
	first := h.seedVariant(t, "First", 10, 5)
	second := h.seedVariant(t, "Second", 20, 5)
	h.addToCart(t, identity, first, 1)
	h.addToCart(t, identity, second, 1)

	view, err := h.cart.UpdateItem(ctx, identity, first, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, view.ItemCount)

	_, err = h.cart.UpdateItem(ctx, identity, first, 6)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	view, err = h.cart.UpdateItem(ctx, identity, first, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1, "zero removes the line")
	assert.Equal(t, second, view.Lines[0].VariantID)

	_, err = h.cart.UpdateItem(ctx, identity, first, 2)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)

	view, err = h.cart.RemoveItem(ctx, identity, second)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.NotNil(t, view.CartID, "the emptied cart still exists")

	_, err = h.cart.RemoveItem(ctx, identity, second)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)

	_, err = h.cart.RemoveItem(ctx, entity.CustomerIdentity(uuid.New()), second)
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	h := newEngineHarness(t)

	view, err := h.cart.GetCart(context.Background(), sessionIdentity())
	require.NoError(t, err)
	assert.Nil(t, view.CartID)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())

	_, err = h.cart.GetCart(context.Background(), entity.Identity{})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}

func TestCartService_Summary(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Basket", 100, 10)
	h.addToCart(t, identity, variant, 2)

	tests := []struct {
		name         string
		region       string
		wantFee      *decimal.Decimal
		wantTotal    int64
		wantFallback bool
	}{
		{name: "no region", region: "", wantTotal: 200},
		{name: "ruled region", region: testRegion, wantFee: decimalPtr(20), wantTotal: 220},
		{name: "unknown region", region: "Upper West", wantFee: decimalPtr(50), wantTotal: 250, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := h.cart.Summary(ctx, identity, tt.region)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.wantTotal).Equal(summary.Total), "total %s", summary.Total)
			if tt.wantFee == nil {
				assert.Nil(t, summary.Delivery)

				return
			}
			require.NotNil(t, summary.Delivery)
			assert.True(t, tt.wantFee.Equal(summary.Delivery.Fee))
			assert.Equal(t, tt.wantFallback, summary.Delivery.Fallback)
		})
	}

	// Crossing the free delivery threshold.
	h.addToCart(t, identity, variant, 3)
	summary, err := h.cart.Summary(ctx, identity, testRegion)
	require.NoError(t, err)
	assert.True(t, summary.Delivery.Fee.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(summary.Total))
}

func TestCartService_ExpiredCart(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	identity := sessionIdentity()
	variant := h.seedVariant(t, "Stale", 10, 10)

	cart := entity.NewCart(identity, time.Now().Add(-8*24*time.Hour), h.config.Cart.TTL)
	require.NoError(t, h.repos.CartRepo().CreateCart(ctx, cart))
	_, err := h.repos.CartRepo().AddLine(ctx, cart.ID, variant, 4)
	require.NoError(t, err)

	view, err := h.cart.GetCart(ctx, identity)
	require.NoError(t, err)
	assert.Empty(t, view.Lines, "an expired cart reads as empty")

	_, err = h.checkout.Checkout(ctx, checkoutInput(identity, entity.PaymentMethodBankTransfer))
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)

	view, err = h.cart.AddItem(ctx, identity, variant, 1)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Quantity, "old lines are dropped when the cart is renewed")
	assert.Equal(t, cart.ID, *view.CartID)
}

func TestCartService_ReclaimExpiredCarts(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	variant := h.seedVariant(t, "Fresh", 10, 10)

	stale := entity.NewCart(sessionIdentity(), time.Now().Add(-30*24*time.Hour), h.config.Cart.TTL)
	require.NoError(t, h.repos.CartRepo().CreateCart(ctx, stale))
	live := sessionIdentity()
	h.addToCart(t, live, variant, 1)

	deleted, err := h.cart.ReclaimExpiredCarts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	view, err := h.cart.GetCart(ctx, live)
	require.NoError(t, err)
	assert.Len(t, view.Lines, 1)
}

type cartServiceFixtures struct {
	cartRepo    *mockRepo.MockCartRepository
	variantRepo *mockRepo.MockVariantRepository
	stockRepo   *mockRepo.MockStockRepository
	ruleRepo    *mockRepo.MockDeliveryRuleRepository
	cache       *mockSvc.MockCartCache
}

func createTestCartService(t *testing.T) (usecase.CartUsecase, *cartServiceFixtures) {
	t.Helper()

	fx := &cartServiceFixtures{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		variantRepo: mockRepo.NewMockVariantRepository(t),
		stockRepo:   mockRepo.NewMockStockRepository(t),
		ruleRepo:    mockRepo.NewMockDeliveryRuleRepository(t),
		cache:       mockSvc.NewMockCartCache(t),
	}

	return NewCartService(CartServiceParams{
		CartRepo:    fx.cartRepo,
		VariantRepo: fx.variantRepo,
		StockRepo:   fx.stockRepo,
		RuleRepo:    fx.ruleRepo,
		Cache:       fx.cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}), fx
}

func TestCartService_GetCart_CacheHit(t *testing.T) {
	srv, fx := createTestCartService(t)
	identity := sessionIdentity()
	cart := entity.NewCart(identity, time.Now(), time.Hour)

	fx.cache.EXPECT().GetCart(mock.Anything, identity).Return(cart, nil)

	view, err := srv.GetCart(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, *view.CartID)
	fx.cartRepo.AssertNotCalled(t, "FindCartByIdentity", mock.Anything, mock.Anything)
}

func TestCartService_GetCart_CacheFailureFallsBack(t *testing.T) {
	srv, fx := createTestCartService(t)
	identity := sessionIdentity()
	cart := entity.NewCart(identity, time.Now(), time.Hour)

	fx.cache.EXPECT().GetCart(mock.Anything, identity).Return(nil, errors.New("redis: connection refused"))
	fx.cartRepo.EXPECT().FindCartByIdentity(mock.Anything, identity).Return(cart, nil)
	fx.cache.EXPECT().SetCart(mock.Anything, identity, cart).Return(errors.New("redis: connection refused"))

	view, err := srv.GetCart(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, *view.CartID)
}

func TestCartService_AddItem_InvalidatesCache(t *testing.T) {
	srv, fx := createTestCartService(t)
	identity := sessionIdentity()
	variant := &entity.Variant{ID: uuid.New(), ProductName: "Mug", Price: decimal.NewFromInt(15), IsActive: true}
	cart := entity.NewCart(identity, time.Now(), time.Hour)

	fx.variantRepo.EXPECT().FindVariantByID(mock.Anything, variant.ID).Return(variant, nil)
	fx.cartRepo.EXPECT().FindCartByIdentity(mock.Anything, identity).Return(cart, nil)
	fx.stockRepo.EXPECT().FindByVariants(mock.Anything, []uuid.UUID{variant.ID}).
		Return([]*entity.StockRecord{{VariantID: variant.ID, Quantity: 3}}, nil)
	fx.cartRepo.EXPECT().AddLine(mock.Anything, cart.ID, variant.ID, 2).
		Return(&entity.CartLine{VariantID: variant.ID, Quantity: 2}, nil)
	fx.cache.EXPECT().InvalidateCart(mock.Anything, identity).Return(nil).Once()
	// GetCart after the write misses the cache and reads the empty stored cart.
	fx.cache.EXPECT().GetCart(mock.Anything, identity).Return(nil, nil)
	fx.cache.EXPECT().SetCart(mock.Anything, identity, cart).Return(nil)

	_, err := srv.AddItem(context.Background(), identity, variant.ID, 2)
	require.NoError(t, err)
}

func TestCartService_ReclaimExpiredCarts_StorageError(t *testing.T) {
	srv, fx := createTestCartService(t)
	fx.cartRepo.EXPECT().DeleteExpiredCarts(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(0, repository.ErrCartNotFound)

	_, err := srv.ReclaimExpiredCarts(context.Background())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}
