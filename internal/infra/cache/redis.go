package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fenixAlex88/technical-support/internal/domain"
	"github.com/fenixAlex88/technical-support/internal/usecase"
)

// Redis keys identities by the raw token string under a fixed prefix and
// serializes the snapshot as JSON, so every auth service instance sees the
// same cache and the same evictions.
type Redis struct {
	client *redis.Client
}

const redisKeyPrefix = "identity:"

func NewRedis(addr, password string, db int) (*Redis, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, token string) (*domain.Identity, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		// A corrupt entry behaves as a miss so the full verification
		// path re-populates it.
		return nil, false, nil
	}
	return &identity, true, nil
}

func (r *Redis) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+token, raw, ttl).Err()
}

func (r *Redis) Evict(ctx context.Context, token string) error {
	return r.client.Del(ctx, redisKeyPrefix+token).Err()
}

var _ usecase.IdentityCache = (*Redis)(nil)
