package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"soulshub/internal/observability"
)

// redisStore is the optional networked backend for deployments that already
// run Redis. Values are plain string keys, no TTLs.
type redisStore struct {
	client *redis.Client
}

// OpenRedis connects to Redis at the given URL or host:port address.
func OpenRedis(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		// Not a URL, treat it as a bare address.
		opts = &redis.Options{Addr: url}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &redisStore{client: client}, nil
}

// NewRedisStore wraps an existing client. Used by tests with miniredis.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "get", key)
	defer span.End()
	defer observability.TrackStoreOperation("redis", "get")()

	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		observability.StoreErrorRate.WithLabelValues("redis", "get").Inc()
		observability.RecordSpanError(span, err)
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "put", key)
	defer span.End()
	defer observability.TrackStoreOperation("redis", "put")()

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		observability.StoreErrorRate.WithLabelValues("redis", "put").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "delete", key)
	defer span.End()
	defer observability.TrackStoreOperation("redis", "delete")()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		observability.StoreErrorRate.WithLabelValues("redis", "delete").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "keys", prefix)
	defer span.End()
	defer observability.TrackStoreOperation("redis", "keys")()

	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		observability.StoreErrorRate.WithLabelValues("redis", "keys").Inc()
		observability.RecordSpanError(span, err)
		return nil, fmt.Errorf("keys %q: %w", prefix, err)
	}
	return keys, nil
}

func (s *redisStore) WipePrefix(ctx context.Context, prefix string) error {
	ctx, span := observability.TraceStoreOperation(ctx, "redis", "wipe", prefix)
	defer span.End()
	defer observability.TrackStoreOperation("redis", "wipe")()

	keys, err := s.Keys(ctx, prefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		observability.StoreErrorRate.WithLabelValues("redis", "wipe").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("wipe %q: %w", prefix, err)
	}
	return nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
