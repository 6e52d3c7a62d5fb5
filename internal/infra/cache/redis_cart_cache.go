// Package cache provides the cart read cache.
package cache

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "storefront:"
	defaultBaseTTL   = 10 * time.Minute
)

type redisCartCache struct {
	client    redis.UniversalClient
	keyPrefix string
	baseTTL   time.Duration
}

// NewRedisCartCache creates a CartCache that stores carts as JSON under <prefix>cart:<identity>.
func NewRedisCartCache(client redis.UniversalClient, keyPrefix string, baseTTL time.Duration) service.CartCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if baseTTL <= 0 {
		baseTTL = defaultBaseTTL
	}

	return &redisCartCache{
		client:    client,
		keyPrefix: keyPrefix,
		baseTTL:   baseTTL,
	}
}

func (c *redisCartCache) GetCart(ctx context.Context, identity entity.Identity) (*entity.Cart, error) {
	data, err := c.client.Get(ctx, c.key(identity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get cart failed")
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, errors.Wrap(err, "unmarshal cached cart failed")
	}

	return &cart, nil
}

func (c *redisCartCache) SetCart(ctx context.Context, identity entity.Identity, cart *entity.Cart) error {
	if cart == nil {
		return nil
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart failed")
	}

	ttl := c.ttl()
	// Never outlive the cart itself
	if remaining := time.Until(cart.ExpiresAt); !cart.ExpiresAt.IsZero() && remaining < ttl {
		if remaining <= 0 {
			return nil
		}
		ttl = remaining
	}

	if err := c.client.Set(ctx, c.key(identity), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set cart failed")
	}

	return nil
}

func (c *redisCartCache) InvalidateCart(ctx context.Context, identity entity.Identity) error {
	if err := c.client.Del(ctx, c.key(identity)).Err(); err != nil {
		return errors.Wrap(err, "redis delete cart failed")
	}

	return nil
}

func (c *redisCartCache) key(identity entity.Identity) string {
	return c.keyPrefix + "cart:" + identity.Key()
}

// ttl spreads expiries over [base, base*1.2) so carts cached together do not expire together.
func (c *redisCartCache) ttl() time.Duration {
	jitter := c.baseTTL / 5
	if jitter <= 0 {
		return c.baseTTL
	}

	return c.baseTTL + rand.N(jitter)
}
