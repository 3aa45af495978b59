package books

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// VerifyCache caches registration-id verifications. Verification data is
// static per id, so a long TTL is safe.
type VerifyCache interface {
	Get(ctx context.Context, id string) (Verification, bool)
	Set(ctx context.Context, id string, v Verification)
}

const verifyCacheTTL = 24 * time.Hour

// RedisVerifyCache is the redis-backed cache. Every redis failure degrades
// to a miss; the lookup then goes straight upstream.
type RedisVerifyCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisVerifyCache(rdb *redis.Client, log *zap.Logger) *RedisVerifyCache {
	return &RedisVerifyCache{rdb: rdb, log: log.Named("verify_cache")}
}

func verifyCacheKey(id string) string { return "gstverify:" + id }

func (c *RedisVerifyCache) Get(ctx context.Context, id string) (Verification, bool) {
	raw, err := c.rdb.Get(ctx, verifyCacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache get failed", zap.Error(err))
		}
		return Verification{}, false
	}
	var v Verification
	if err := json.Unmarshal(raw, &v); err != nil {
		return Verification{}, false
	}
	return v, true
}

func (c *RedisVerifyCache) Set(ctx context.Context, id string, v Verification) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, verifyCacheKey(id), raw, verifyCacheTTL).Err(); err != nil {
		c.log.Warn("cache set failed", zap.Error(err))
	}
}
