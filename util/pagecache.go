package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/genotator/config"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// CachedPage is a rendered response body with its content type.
type CachedPage struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache keeps rendered pages in process memory and, when Redis is
// configured, in Redis so that other instances can serve them too.
// A nil *PageCache or a zero TTL disables caching.
type PageCache struct {
	local *cache.Cache
	ttl   time.Duration
}

// NewPageCache returns a cache whose entries live for ttl, or nil when ttl <= 0.
func NewPageCache(ttl time.Duration) *PageCache {
	if ttl <= 0 {
		return nil
	}
	return &PageCache{
		local: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func redisPageKey(key string) string {
	return fmt.Sprintf("page:%s", key)
}

// Get looks the key up locally first, then in Redis. A Redis hit is copied
// into the local tier.
func (p *PageCache) Get(ctx context.Context, key string) (CachedPage, bool) {
	if p == nil {
		return CachedPage{}, false
	}
	if v, ok := p.local.Get(key); ok {
		if page, ok := v.(CachedPage); ok {
			return page, true
		}
	}

	rdb := config.GetRedisClient()
	if rdb == nil {
		return CachedPage{}, false
	}
	raw, err := rdb.Get(ctx, redisPageKey(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logCacheFailure("get", key, err)
		}
		return CachedPage{}, false
	}
	var page CachedPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		logCacheFailure("decode", key, err)
		return CachedPage{}, false
	}
	p.local.Set(key, page, cache.DefaultExpiration)
	return page, true
}

// Set stores the page in both tiers. Redis failures are logged and otherwise ignored.
func (p *PageCache) Set(ctx context.Context, key string, page CachedPage) {
	if p == nil {
		return
	}
	p.local.Set(key, page, cache.DefaultExpiration)

	rdb := config.GetRedisClient()
	if rdb == nil {
		return
	}
	b, err := json.Marshal(page)
	if err != nil {
		logCacheFailure("encode", key, err)
		return
	}
	if err := rdb.Set(ctx, redisPageKey(key), string(b), p.ttl).Err(); err != nil {
		logCacheFailure("set", key, err)
	}
}

// Flush drops every local entry. Redis entries expire on their own.
func (p *PageCache) Flush() {
	if p == nil {
		return
	}
	p.local.Flush()
}

func logCacheFailure(op, key string, err error) {
	LogAccessEvent(AccessEvent{
		EventType: EventCacheFailure,
		Message:   fmt.Sprintf("page cache %s %s: %v", op, key, err),
	})
}
