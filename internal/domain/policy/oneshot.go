package policy

import "sync"

// OneShot is a single-value notification slot. A value stays in the slot
// until the reader takes it; while occupied, new offers are rejected.
// One writer and one reader are expected, but the slot is safe for any
// number of goroutines.
type OneShot[T any] struct {
	mu     sync.Mutex
	value  T
	full   bool
	signal chan struct{}
}

// NewOneShot returns an empty slot.
func NewOneShot[T any]() *OneShot[T] {
	return &OneShot[T]{signal: make(chan struct{}, 1)}
}

// Offer stores v if the slot is empty and reports whether it was stored.
func (s *OneShot[T]) Offer(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.full {
		return false
	}
	s.value = v
	s.full = true

	select {
	case s.signal <- struct{}{}:
	default:
	}
	return true
}

// Peek returns the pending value without clearing it.
func (s *OneShot[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.full
}

// Take returns the pending value and clears the slot, re-arming it.
func (s *OneShot[T]) Take() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.value, s.full
	var zero T
	s.value = zero
	s.full = false
	return v, ok
}

// Clear empties the slot without reading it.
func (s *OneShot[T]) Clear() {
	s.Take()
}

// Ready is signalled after every successful Offer. A receive does not clear
// the slot; call Take.
func (s *OneShot[T]) Ready() <-chan struct{} {
	return s.signal
}
