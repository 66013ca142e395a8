package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ticket-booking/internal/domain/intent"
	"ticket-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assistant:intent:"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisIntentCache stores search classifications keyed by the normalised query text.
type RedisIntentCache struct {
	rdb redisClient
	ttl time.Duration
}

func NewRedisIntentCache(rdb redisClient, ttl time.Duration) *RedisIntentCache {
	return &RedisIntentCache{rdb: rdb, ttl: ttl}
}

type cachedIntent struct {
	Type  string `json:"searchType"`
	Value string `json:"searchValue"`
}

func (c *RedisIntentCache) Get(ctx context.Context, query string) (intent.SearchIntent, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return intent.SearchIntent{}, false, nil
	}
	if err != nil {
		return intent.SearchIntent{}, false, errs.Wrap(err, "read cached intent")
	}

	var ci cachedIntent
	if err := json.Unmarshal(raw, &ci); err != nil {
		return intent.SearchIntent{}, false, errs.Wrap(err, "decode cached intent")
	}
	return intent.SearchIntent{Type: intent.ParseSearchType(ci.Type), Value: ci.Value}, true, nil
}

func (c *RedisIntentCache) Set(ctx context.Context, query string, si intent.SearchIntent) error {
	raw, err := json.Marshal(cachedIntent{Type: string(si.Type), Value: si.Value})
	if err != nil {
		return errs.Wrap(err, "encode intent")
	}
	if err := c.rdb.Set(ctx, Key(query), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write cached intent")
	}
	return nil
}

// Key folds case and whitespace so trivially different phrasings share an entry.
func Key(query string) string {
	normalised := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(normalised))
	return keyPrefix + hex.EncodeToString(sum[:])
}
