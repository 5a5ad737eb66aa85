package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/6394981696/Lecture-Scheduling/pkg/redis"
)

// RedisStore persists session records in Redis with a TTL, so
// sessions survive restarts and are shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore on top of an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Set(ctx context.Context, id string, p *Principal) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling principal: %w", err)
	}
	return s.client.SetSession(ctx, id, b, s.ttl)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Principal, error) {
	b, err := s.client.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p Principal
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshaling principal: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	return s.client.DeleteSession(ctx, id)
}
