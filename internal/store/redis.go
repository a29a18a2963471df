package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zerodha/logf"
)

// RedisStore is the concrete SessionStore backing every deployment: one
// Redis hash per session key, written with pipelined HSET/HDEL so a
// multi-field state patch lands as one round trip.
type RedisStore struct {
	client *redis.Client
	log    logf.Logger
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, log logf.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) GetField(ctx context.Context, key, field string) (string, bool, error) {
	v, err := s.client.HGet(ctx, key, field).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("hget %s.%s: %w", key, field, err)
	}
	return v, true, nil
}

func (s *RedisStore) GetAll(ctx context.Context, key string) (map[string]string, error) {
	m, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return m, nil
}

func (s *RedisStore) SetField(ctx context.Context, key, field, value string) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("hset %s.%s: %w", key, field, err)
	}
	return nil
}

func (s *RedisStore) DelField(ctx context.Context, key, field string) error {
	if err := s.client.HDel(ctx, key, field).Err(); err != nil {
		return fmt.Errorf("hdel %s.%s: %w", key, field, err)
	}
	return nil
}

// ApplyPatch pipelines every write/delete in patch into one MULTI/EXEC
// transaction, sent in one round trip.
func (s *RedisStore) ApplyPatch(ctx context.Context, key string, patch map[string]*string) error {
	if len(patch) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	for field, value := range patch {
		if value == nil {
			pipe.HDel(ctx, key, field)
			continue
		}
		pipe.HSet(ctx, key, field, *value)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("apply state patch on %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Expire(ctx context.Context, key string, seconds int) error {
	if seconds <= 0 {
		return nil
	}
	if err := s.client.Expire(ctx, key, time.Duration(seconds)*time.Second).Err(); err != nil {
		return fmt.Errorf("expire %s: %w", key, err)
	}
	return nil
}
