// Package cache is a thin cache-aside layer over Redis used for catalog
// responses. The service stays fully functional without Redis configured.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache pings the server once; an unreachable Redis is logged and
// reported as nil so callers fall back to uncached reads.
func NewRedisCache(addr, password string, db int) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, catalog caching disabled: %v", addr, err)
		return nil
	}
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}
