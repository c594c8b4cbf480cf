package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedSaves is a read-through cache in front of another Saves backend.
// Writes go to the backend first and refresh the cache only on success.
type CachedSaves struct {
	backend Saves
	cache   *expirable.LRU[string, []byte]
}

// NewCachedSaves wraps backend with an LRU of size entries that expire after ttl.
// A ttl of zero disables expiry.
func NewCachedSaves(backend Saves, size int, ttl time.Duration) *CachedSaves {
	if size <= 0 {
		size = 1
	}
	return &CachedSaves{
		backend: backend,
		cache:   expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *CachedSaves) Load(ctx context.Context, key string) ([]byte, error) {
	if data, ok := c.cache.Get(key); ok {
		return clone(data), nil
	}
	data, err := c.backend.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, clone(data))
	return data, nil
}

func (c *CachedSaves) Save(ctx context.Context, key string, data []byte) error {
	if err := c.backend.Save(ctx, key, data); err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, clone(data))
	return nil
}

func (c *CachedSaves) Delete(ctx context.Context, key string) error {
	c.cache.Remove(key)
	return c.backend.Delete(ctx, key)
}

func (c *CachedSaves) Exists(ctx context.Context, key string) (bool, error) {
	if c.cache.Contains(key) {
		return true, nil
	}
	return c.backend.Exists(ctx, key)
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
