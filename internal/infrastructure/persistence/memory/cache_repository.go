package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/brewista/catalog/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements an in-memory cache, the local stand-in for the
// redis adapter in tests and single-process deployments.
type CacheRepository struct {
	mu   sync.RWMutex
	data map[string]cacheItem
}

// NewCacheRepository creates a new in-memory cache repository
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{data: make(map[string]cacheItem)}
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, ok := r.data[key]
	r.mu.RUnlock()

	if !ok || time.Now().After(item.expiresAt) {
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cacheItem{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Exists checks if a key exists in cache
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.data[key]
	if !ok || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}

// MGet retrieves multiple keys in one call; absent keys are omitted
func (r *CacheRepository) MGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if item, ok := r.data[key]; ok && now.Before(item.expiresAt) {
			result[key] = item.value
		}
	}
	return result, nil
}

// MSet stores multiple entries in one call with a shared TTL
func (r *CacheRepository) MSet(ctx context.Context, items map[string][]byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	expiresAt := time.Now().Add(ttl)
	for key, value := range items {
		r.data[key] = cacheItem{value: value, expiresAt: expiresAt}
	}
	return nil
}
