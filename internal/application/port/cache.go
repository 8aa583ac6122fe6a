package port

// Cache is a bounded in-memory map safe for concurrent use. Set may evict
// the entry used least recently.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
	Len() int
}
