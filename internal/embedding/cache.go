package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matchcolab/matchmaker/internal/logger"
)

// redisCache is a Redis-backed embedding cache. Tag texts repeat heavily
// across match requests, and every provider call costs money, so cache hits
// short-circuit the provider entirely.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCache constructs the embedding cache from Config. When no Redis address
// is configured it returns nil, which the Client treats as "no cache".
func NewCache(cfg *Config, log *logger.Logger) Cache {
	if cfg.CacheAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.CacheAddr})

	log.Info("embedding cache enabled", nil, map[string]interface{}{
		"addr": cfg.CacheAddr,
		"ttl":  cfg.CacheTTL.String(),
	})

	return &redisCache{client: client, ttl: cfg.CacheTTL, logger: log}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]float32, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("embedding cache read failed", err, nil)
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(raw, &vector); err != nil {
		c.logger.Warn("embedding cache entry corrupt, ignoring", err, nil)
		return nil, false
	}
	return vector, true
}

func (c *redisCache) Set(ctx context.Context, key string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("embedding cache write failed", err, nil)
	}
}

// cacheKey derives a stable cache key from the model and the normalized
// input text. Whitespace runs and letter case do not change the meaning of
// a tag list, so they do not change the key either.
func cacheKey(model, text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	sum := sha256.Sum256([]byte(normalized))
	return "matchmaker:emb:" + model + ":" + hex.EncodeToString(sum[:])
}
