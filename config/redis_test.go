package config

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_Skipped(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "test env", cfg: &Config{AppEnv: "test", RedisAddr: "localhost:6379"}},
		{name: "no address", cfg: &Config{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetRedisClientForTest()
			t.Cleanup(ResetRedisClientForTest)

			rdb, err := ConnectRedis(tt.cfg)
			assert.NoError(t, err)
			assert.Nil(t, rdb)
		})
	}
}

func TestConnectRedis_UnreachableServer(t *testing.T) {
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	// port 1 on loopback refuses connections
	rdb, err := ConnectRedis(&Config{RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
	assert.Nil(t, rdb)
	assert.Nil(t, GetRedisClient())
}

func TestConnectRedis_ConcurrentCalls(t *testing.T) {
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	cfg := &Config{AppEnv: "test"}

	type callResult struct {
		isNil bool
		err   error
	}
	done := make(chan callResult, 5)
	for i := 0; i < 5; i++ {
		go func() {
			rdb, err := ConnectRedis(cfg)
			done <- callResult{isNil: rdb == nil, err: err}
		}()
	}

	for i := 0; i < 5; i++ {
		res := <-done
		assert.NoError(t, res.err)
		assert.True(t, res.isNil)
	}
}

func TestRedisTestHelpers_SetAndReset(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	t.Cleanup(ResetRedisClientForTest)

	SetRedisClientForTest(rdb)
	assert.Equal(t, rdb, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
