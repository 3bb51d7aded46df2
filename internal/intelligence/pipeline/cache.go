package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arthik444/procheck/internal/common/database"
	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/common/metrics"
)

const cacheKeyPrefix = "procheck:search:"

// Cache is the Redis-backed response cache. Failures degrade to cache
// misses; the pipeline never fails because the cache is down.
type Cache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCache(redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "response-cache"}),
	}
}

// Key digests the request into a stable cache key. Filters participate via
// their JSON encoding, which is deterministic for the Filters struct.
func Key(req SearchRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached response for a request, or nil on miss or error.
func (c *Cache) Get(ctx context.Context, req SearchRequest) *SearchResponse {
	raw, err := c.redis.Get(ctx, Key(req))
	if err != nil {
		if err == redis.Nil {
			metrics.CacheOperations.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheOperations.WithLabelValues("error").Inc()
			c.logger.Warn("cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}

	var response SearchResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		metrics.CacheOperations.WithLabelValues("error").Inc()
		c.logger.Warn("cache entry corrupt", map[string]interface{}{"error": err.Error()})
		return nil
	}

	metrics.CacheOperations.WithLabelValues("hit").Inc()
	return &response
}

// Set stores a response under the request's key. Errors are logged and
// swallowed.
func (c *Cache) Set(ctx context.Context, req SearchRequest, response *SearchResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		c.logger.Warn("cache encode failed", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := c.redis.Set(ctx, Key(req), payload, c.ttl); err != nil {
		metrics.CacheOperations.WithLabelValues("error").Inc()
		c.logger.Warn("cache write failed", map[string]interface{}{"error": fmt.Sprintf("%v", err)})
	}
}
