package concurrent

import "sync"

// Slice is an append-only slice safe for concurrent use, handy to record what hooks observed.
type Slice[T any] struct {
	mu    sync.RWMutex
	inner []T
}

// NewSlice creates an empty Slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{inner: make([]T, 0)}
}

// Append adds v at the end.
func (s *Slice[T]) Append(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = append(s.inner, v)
}

// Get returns a copy of the content.
func (s *Slice[T]) Get() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.inner))
	copy(result, s.inner)
	return result
}

// Length returns the number of elements.
func (s *Slice[T]) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inner)
}
