package texture

import (
	"image"
	"sync"
)

// Resolver resolves a texture path to a decoded image.
type Resolver interface {
	Resolve(path string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache. Failed loads are cached too, so
// a broken file is reported once per path rather than once per render.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve loads and caches a texture by path. An empty path resolves to nil.
func (c *Cache) Resolve(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}
