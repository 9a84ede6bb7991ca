package rfid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "rfid:latest"

// RedisStore shares the latest reading between replicas. Replicas with the
// simulator disabled read what the generating replica wrote.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, tag Tag) error {
	payload, err := json.Marshal(tag)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("rfid: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context) (Tag, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Tag{}, ErrNoTag
	}
	if err != nil {
		return Tag{}, fmt.Errorf("rfid: redis get: %w", err)
	}

	var tag Tag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return Tag{}, fmt.Errorf("rfid: decode cached tag: %w", err)
	}
	return tag, nil
}
