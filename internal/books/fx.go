package books

import (
	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/taxledger/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("books",
	fx.Provide(provideVerifyCache),
	fx.Provide(provideClient),
)

func provideClient(cfg config.Config, log *zap.Logger, cache VerifyCache) *Client {
	return NewClient(cfg.BooksBaseURL, log, cache)
}

// provideVerifyCache returns a redis-backed cache when redis is configured,
// otherwise nil (the client then always goes straight upstream).
func provideVerifyCache(cfg config.Config, log *zap.Logger) VerifyCache {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewRedisVerifyCache(rdb, log)
}
