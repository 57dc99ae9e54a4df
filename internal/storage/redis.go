package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// RedisStore persists the snapshot as one Redis string key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedis connects a snapshot backend to Redis under the given key.
func NewRedis(addr, password string, db int, key string) (*RedisStore, error) {
	if key == "" {
		key = DefaultKey
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

// NewRedisWithClient wraps an existing client, mainly for tests.
func NewRedisWithClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

// Load implements Persistence. A missing key means no records yet.
func (s *RedisStore) Load(ctx context.Context) ([]model.ApplicationRecord, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", s.key, err)
	}
	return Decode(payload)
}

// Save implements Persistence, rewriting the whole snapshot with no expiry.
func (s *RedisStore) Save(ctx context.Context, records []model.ApplicationRecord) error {
	payload, err := Encode(records)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot %q: %w", s.key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
