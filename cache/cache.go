package cache

import (
	"context"
	"time"
)

// LoaderFunc loads the value for a key that is absent from the cache.
// Values are stored only when the loader returns a nil error.
// ctx is detached from the caller's cancellation; it keeps its values.
type LoaderFunc func(ctx context.Context) ([]byte, error)

// Status describes how a value was served, suitable for a Cache-Status header.
type Status string

const (
	StatusHit    Status = "hit"
	StatusMiss   Status = "miss"
	StatusBypass Status = "bypass"
)

// Cache is a byte cache with per-entry expiration
//
//go:generate mockgen -destination=mocks/cache.go . Cache
type Cache interface {
	// GetOrLoad returns the cached value for key, or calls loader and stores
	// its result for ttl. A ttl of 0 uses the cache's default expiration.
	// Concurrent loads of the same key share one loader call. A caller whose
	// ctx ends stops waiting without failing the other callers.
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader LoaderFunc) ([]byte, Status, error)

	// Get returns the cached value and whether it was found.
	Get(key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(key string, value []byte, ttl time.Duration)

	// Delete removes key.
	Delete(key string)
}
