package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/kilatwash/washpos-api/internal/domain/entity"
)

// PriceCache caches resolved price matrix rows keyed by the lookup tuple.
// Misses and unreachable backends both report found=false so price resolution
// falls back to the database.
type PriceCache interface {
	Get(ctx context.Context, key string) (*entity.PriceMatrix, bool, error)
	Set(ctx context.Context, key string, row *entity.PriceMatrix) error
	Invalidate(ctx context.Context, serviceItemID string) error
}

type RedisPriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPriceCache(addr, password string, db int, ttl time.Duration) *RedisPriceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisPriceCache{client: client, ttl: ttl}
}

func (c *RedisPriceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisPriceCache) Close() error {
	return c.client.Close()
}

func (c *RedisPriceCache) Get(ctx context.Context, key string) (*entity.PriceMatrix, bool, error) {
	val, err := c.client.Get(ctx, "price:"+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var row entity.PriceMatrix
	if err := json.Unmarshal([]byte(val), &row); err != nil {
		return nil, false, err
	}
	return &row, true, nil
}

func (c *RedisPriceCache) Set(ctx context.Context, key string, row *entity.PriceMatrix) error {
	if row == nil {
		return nil
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "price:"+key, payload, c.ttl).Err()
}

// Invalidate drops every cached lookup for a service item. Called after any
// price matrix write so stale prices never survive a catalog change.
func (c *RedisPriceCache) Invalidate(ctx context.Context, serviceItemID string) error {
	iter := c.client.Scan(ctx, 0, "price:"+serviceItemID+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// NoopPriceCache is used when no Redis address is configured.
type NoopPriceCache struct{}

func NewNoopPriceCache() *NoopPriceCache { return &NoopPriceCache{} }

func (NoopPriceCache) Get(ctx context.Context, key string) (*entity.PriceMatrix, bool, error) {
	return nil, false, nil
}

func (NoopPriceCache) Set(ctx context.Context, key string, row *entity.PriceMatrix) error {
	return nil
}

func (NoopPriceCache) Invalidate(ctx context.Context, serviceItemID string) error {
	return nil
}
