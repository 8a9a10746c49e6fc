package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"gearguard/pkg/apperrors"
)

type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &RedisCacheRepository{client: client}
}

func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCacheRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// MemoryCacheRepository stands in for Redis when it is not configured.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	value     string
	expiresAt time.Time
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return &MemoryCacheRepository{entries: make(map[string]memoryCacheEntry)}
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		delete(r.entries, key)
		return "", apperrors.ErrNotFound
	}
	return entry.value, nil
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	s, ok := value.(string)
	if !ok {
		b, okB := value.([]byte)
		if !okB {
			return apperrors.ErrBadRequest
		}
		s = string(b)
	}
	entry := memoryCacheEntry{value: s}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}
	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
	return nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.entries, key)
	}
	return nil
}
