// Package set provides a minimal generic set.
package set

// Set is an unordered collection of unique values.
type Set[T comparable] map[T]struct{}

// New creates an empty set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// NewWithValues creates a set holding values.
func NewWithValues[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts value, it is a no-op when value is already present.
func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// Contains tells if value is in the set.
func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

// Size returns the number of values.
func (s Set[T]) Size() int {
	return len(s)
}
