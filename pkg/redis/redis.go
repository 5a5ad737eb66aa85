package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
)

// ErrKeyNotFound is returned when a key does not exist.
var ErrKeyNotFound = errors.New("redis: key not found")

// Client wraps the Redis connection.
// Used for session records and login rate limiting.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and performs a Ping health check.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── session records ──

const sessionPrefix = "session:"

// SetSession stores a serialized session record under the given ID.
func (c *Client) SetSession(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionPrefix+id, payload, ttl).Err()
}

// GetSession returns the serialized session record for the given ID.
func (c *Client) GetSession(ctx context.Context, id string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return b, nil
}

// DeleteSession removes the session record for the given ID.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sessionPrefix+id).Err()
}

// ── rate limiting ──

// CheckRateLimit allows at most limit hits per key within window.
// Fixed window: INCR plus EXPIRE on first hit.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
