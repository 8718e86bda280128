package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// GoCache is a []byte store on top of go-cache
type GoCache struct {
	cache *gocache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the value for key. Values of another type count as missing.
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// Set stores value with the given timeout.
// If timeout is 0, uses cache's default expiration
func (gc *GoCache) Set(key string, value []byte, timeout time.Duration) {
	if timeout == 0 {
		timeout = gocache.DefaultExpiration
	}
	gc.cache.Set(key, value, timeout)
}

func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache, including expired ones not yet purged
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
