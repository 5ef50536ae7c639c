package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedCatalog wraps the raw catalog bytes with the file modification time
// observed at load, so edits on disk invalidate the entry immediately.
type cachedCatalog struct {
	Data    []byte
	ModTime time.Time
}

// catalogCache is a small expirable LRU over catalog files keyed by path.
// The preview server re-reads the file only when it changed or the TTL
// lapsed.
type catalogCache struct {
	lru *expirable.LRU[string, *cachedCatalog]
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedCatalog](size, nil, ttl),
	}
}

// Load returns the catalog bytes for path, reading from disk on a cache
// miss or when the file's mtime moved.
func (c *catalogCache) Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog not available at %s: %w", path, err)
	}

	if entry, ok := c.lru.Get(path); ok && entry.ModTime.Equal(info.ModTime()) {
		return entry.Data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c.lru.Add(path, &cachedCatalog{Data: data, ModTime: info.ModTime()})
	return data, nil
}
