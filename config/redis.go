package config

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 2 * time.Second

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisMu     sync.RWMutex
)

// ConnectRedis dials cfg.RedisAddr once per process. Without an address, or
// in the test environment, no client is created and the returned client is
// nil; callers fall back to the local page cache and skip rate limiting.
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		if cfg == nil || cfg.AppEnv == "test" || cfg.RedisAddr == "" {
			return
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err = rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			err = fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
			return
		}

		setRedisClient(rdb)
		log.Printf("Page cache and rate limiter using Redis at %s (db %d)", cfg.RedisAddr, cfg.RedisDB)
	})
	return GetRedisClient(), err
}

// GetRedisClient returns the shared client, or nil when Redis is not in use.
func GetRedisClient() *redis.Client {
	redisMu.RLock()
	defer redisMu.RUnlock()
	return redisClient
}

func setRedisClient(c *redis.Client) {
	redisMu.Lock()
	redisClient = c
	redisMu.Unlock()
}
