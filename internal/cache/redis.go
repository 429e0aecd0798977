package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis cache configuration
type RedisConfig struct {
	URL       string
	Namespace string
	TTL       time.Duration
}

// redisStore implements Store using Redis
type redisStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewRedisStore creates a Redis-backed store and verifies the connection
func NewRedisStore(cfg RedisConfig, logger *slog.Logger) (Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	logger.Info("connected to Redis cache",
		slog.String("addr", opts.Addr),
		slog.String("namespace", cfg.Namespace),
	)

	return &redisStore{
		client:    client,
		namespace: cfg.Namespace,
		ttl:       ttl,
		logger:    logger,
	}, nil
}

func (s *redisStore) key(key string) string {
	return s.namespace + key
}

func (s *redisStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// Invalidate scans for matching keys and deletes them in batches
func (s *redisStore) Invalidate(ctx context.Context, prefix string) error {
	pattern := escapeGlob(s.key(prefix)) + "*"

	var removed int64
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			n, err := s.client.Del(ctx, batch...).Result()
			if err != nil {
				return fmt.Errorf("failed to invalidate %s: %w", prefix, err)
			}
			removed += n
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", prefix, err)
	}
	if len(batch) > 0 {
		n, err := s.client.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("failed to invalidate %s: %w", prefix, err)
		}
		removed += n
	}

	s.logger.Debug("cache invalidated",
		slog.String("prefix", prefix),
		slog.Int64("removed", removed),
	)
	return nil
}

func (s *redisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
