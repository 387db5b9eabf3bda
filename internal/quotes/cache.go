package quotes

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// quoteTTL is just under the dispatch tick so every minute boundary sees a
// fresh sample while duplicate tickers within one scan share a single
// provider call.
const quoteTTL = 55 * time.Second

// Cache is a read-through Redis layer in front of another Fetcher. Redis
// being down only costs provider calls, never correctness.
type Cache struct {
	rdb  *redis.Client
	next Fetcher
	ttl  time.Duration
}

func NewCache(rdb *redis.Client, next Fetcher) *Cache {
	return &Cache{rdb: rdb, next: next, ttl: quoteTTL}
}

func cacheKey(symbol string) string { return "quote:" + symbol }

func (c *Cache) Fetch(ctx context.Context, symbol string) (Quote, error) {
	if raw, err := c.rdb.Get(ctx, cacheKey(symbol)).Bytes(); err == nil {
		var q Quote
		if json.Unmarshal(raw, &q) == nil {
			return q, nil
		}
	}

	q, err := c.next.Fetch(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	if data, err := json.Marshal(q); err == nil {
		_ = c.rdb.Set(ctx, cacheKey(symbol), data, c.ttl).Err()
	}
	return q, nil
}
