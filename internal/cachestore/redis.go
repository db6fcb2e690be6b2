package cachestore

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint used while resetting.
const scanBatch = 100

// RedisStorage is a fiber.Storage backed by go-redis. All keys are
// prefixed so Reset only touches this application's entries.
type RedisStorage struct {
	client redis.UniversalClient
	prefix string
}

var _ fiber.Storage = (*RedisStorage)(nil)

// NewRedisStorage wraps client.
func NewRedisStorage(client redis.UniversalClient, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

// Get returns nil without error when key does not exist.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	val, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, err
	}

	return val, nil
}

// Set stores val under key. exp of 0 means no expiration.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	return s.client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

// Delete removes key.
func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	return s.client.Del(context.Background(), s.prefix+key).Err()
}

// Reset removes every prefixed key.
func (s *RedisStorage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", scanBatch).Iterator()

	var batch []string

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}

			batch = batch[:0]
		}
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(batch) > 0 {
		return s.client.Del(ctx, batch...).Err()
	}

	return nil
}

// Close closes the client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
