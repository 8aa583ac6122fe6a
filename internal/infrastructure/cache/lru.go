// Package cache provides cache implementations for the application layer.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bnema/pagehost/internal/application/port"
)

// LRU is a thread-safe fixed-size cache. It implements port.Cache[K, V].
type LRU[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

// NewLRU creates a new LRU cache with the given capacity.
// Capacity must be positive; if zero or negative, a capacity of 1 is used.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	// lru.New only fails on a non-positive size.
	inner, _ := lru.New[K, V](capacity)
	return &LRU[K, V]{inner: inner}
}

// Get retrieves a value by key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

// Set adds or updates a value, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.inner.Add(key, value)
}

// Remove deletes a key from the cache.
func (c *LRU[K, V]) Remove(key K) {
	c.inner.Remove(key)
}

// Len returns the number of items currently in the cache.
func (c *LRU[K, V]) Len() int {
	return c.inner.Len()
}

// Clear empties the cache.
func (c *LRU[K, V]) Clear() {
	c.inner.Purge()
}

var _ port.Cache[string, string] = (*LRU[string, string])(nil)
