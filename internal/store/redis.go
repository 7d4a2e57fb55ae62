// internal/store/redis.go
//
// Redis implementation of Store. Sessions are stored as JSON strings under
// "session:{key}" with a TTL, so abandoned sessions clean themselves up.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/pokedle/internal/game"
)

const sessionKeyPrefix = "session:"

// RedisConfig holds the configuration for the Redis store.
type RedisConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration // 0: DefaultTTL
}

// Validate ensures all required dependencies are provided.
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.New("store: config cannot be nil")
	}
	if c.Client == nil {
		return errors.New("store: redis client is required")
	}
	if c.TTL < 0 {
		return errors.New("store: negative TTL")
	}
	return nil
}

type redisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed Store.
func NewRedisStore(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &redisStore{client: cfg.Client, ttl: ttl}, nil
}

// Ensure redisStore implements Store
var _ Store = (*redisStore)(nil)

func (r *redisStore) Save(ctx context.Context, g *game.Game) error {
	if g == nil {
		return errors.New("store: nil game")
	}
	b, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+g.Key(), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session in redis: %w", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, key string) (*game.Game, error) {
	b, err := r.client.Get(ctx, sessionKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session from redis: %w", err)
	}
	var g game.Game
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &g, nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete session from redis: %w", err)
	}
	return nil
}
