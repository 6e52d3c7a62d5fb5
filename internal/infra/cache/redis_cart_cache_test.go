package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupTestRedis(t *testing.T) (*redisCartCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCartCache(client, "test:", time.Minute).(*redisCartCache), mr
}

func testCart(identity entity.Identity) *entity.Cart {
	cart := entity.NewCart(identity, time.Now(), time.Hour)
	cart.Lines = []entity.CartLine{
		{ID: uuid.New(), CartID: cart.ID, VariantID: uuid.New(), Quantity: 2},
	}

	return cart
}

func TestRedisCartCache_RoundTrip(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	identity := entity.CustomerIdentity(uuid.New())

	miss, err := cache.GetCart(ctx, identity)
	require.NoError(t, err)
	assert.Nil(t, miss)

	cart := testCart(identity)
	require.NoError(t, cache.SetCart(ctx, identity, cart))
	assert.True(t, mr.Exists("test:cart:"+identity.Key()))

	got, err := cache.GetCart(ctx, identity)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cart.ID, got.ID)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, cart.Lines[0].VariantID, got.Lines[0].VariantID)
	assert.Equal(t, 2, got.Lines[0].Quantity)

	require.NoError(t, cache.InvalidateCart(ctx, identity))
	assert.False(t, mr.Exists("test:cart:"+identity.Key()))
}

func TestRedisCartCache_TTLIsJittered(t *testing.T) {
	cache, mr := setupTestRedis(t)
	identity := entity.SessionIdentity("session-token-123")

	require.NoError(t, cache.SetCart(context.Background(), identity, testCart(identity)))

	ttl := mr.TTL("test:cart:" + identity.Key())
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.Less(t, ttl, time.Minute+12*time.Second)
}

func TestRedisCartCache_TTLCappedByCartExpiry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	identity := entity.SessionIdentity("session-token-123")

	cart := entity.NewCart(identity, time.Now(), 10*time.Second)
	require.NoError(t, cache.SetCart(context.Background(), identity, cart))
	assert.LessOrEqual(t, mr.TTL("test:cart:"+identity.Key()), 10*time.Second)

	expired := entity.NewCart(identity, time.Now().Add(-time.Hour), time.Minute)
	other := entity.SessionIdentity("session-token-456")
	require.NoError(t, cache.SetCart(context.Background(), other, expired))
	assert.False(t, mr.Exists("test:cart:"+other.Key()))
}

func TestRedisCartCache_Errors(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	identity := entity.SessionIdentity("session-token-123")

	require.NoError(t, mr.Set("test:cart:"+identity.Key(), "{not json"))
	_, err := cache.GetCart(ctx, identity)
	require.Error(t, err)

	mr.Close()
	_, err = cache.GetCart(ctx, identity)
	require.Error(t, err)
	assert.Error(t, cache.SetCart(ctx, identity, testCart(identity)))
	assert.Error(t, cache.InvalidateCart(ctx, identity))
}

func TestNoopCartCache(t *testing.T) {
	cache := NewNoopCartCache()
	identity := entity.SessionIdentity("session-token-123")

	require.NoError(t, cache.SetCart(context.Background(), identity, testCart(identity)))
	got, err := cache.GetCart(context.Background(), identity)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.InvalidateCart(context.Background(), identity))
}

func TestNew_SelectsImplementation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	lc := fxtest.NewLifecycle(t)
	noop := New(Params{Lifecycle: lc, Config: &config.Config{}, Logger: logger})
	assert.IsType(t, noopCartCache{}, noop)

	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "sf:"}}
	cfg.Cart.CacheTTL = time.Minute

	lc = fxtest.NewLifecycle(t)
	redisCache := New(Params{Lifecycle: lc, Config: cfg, Logger: logger})
	lc.RequireStart()
	defer lc.RequireStop()

	require.IsType(t, &redisCartCache{}, redisCache)
	assert.Equal(t, "sf:", redisCache.(*redisCartCache).keyPrefix)
}
