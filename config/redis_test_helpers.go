package config

import (
	"sync"

	"github.com/redis/go-redis/v9"
)

// SetRedisClientForTest sets the Redis client for testing purposes.
// This function is only available for testing and should not be used in production code.
func SetRedisClientForTest(client *redis.Client) {
	setRedisClient(client)
}

// ResetRedisClientForTest clears the Redis client singleton so ConnectRedis runs again.
func ResetRedisClientForTest() {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = nil
	redisOnce = sync.Once{}
}
