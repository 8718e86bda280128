package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	_, found := cache.Get("missing")
	assert.False(t, found)

	cache.Set("key1", []byte("value1"), 0)
	data, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), data)
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_DeleteAndClear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)
	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Delete("key1")
	_, found := cache.Get("key1")
	assert.False(t, found)
	assert.Equal(t, 1, cache.ItemCount())

	cache.Clear()
	assert.Equal(t, 0, cache.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("short", []byte("expires soon"), 100*time.Millisecond)
	cache.Set("forever", []byte("never expires"), -1)

	_, found := cache.Get("short")
	assert.True(t, found)

	time.Sleep(150 * time.Millisecond)

	_, found = cache.Get("short")
	assert.False(t, found)
	data, found := cache.Get("forever")
	assert.True(t, found)
	assert.Equal(t, []byte("never expires"), data)
}
