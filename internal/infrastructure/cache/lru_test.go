package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_DescriptionsByURL(t *testing.T) {
	c := NewLRU[string, string](2)

	c.Set("https://medium.com/a", "first article")
	c.Set("https://medium.com/b", "second article")

	got, ok := c.Get("https://medium.com/a")
	require.True(t, ok)
	assert.Equal(t, "first article", got)

	// b is now least recently used.
	c.Set("https://medium.com/c", "third article")
	_, ok = c.Get("https://medium.com/b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_UpdateRemoveClear(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	c.Remove("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.Set("x", 1)
	c.Set("y", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestLRU_ZeroCapacity(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, int](64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i*100+j)%128)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
