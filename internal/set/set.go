package set

import (
	"iter"
	"maps"
)

// Set provides a wrapper around a map[T]struct{}. The zero value is an empty
// set ready for use.
type Set[T comparable] struct {
	values map[T]struct{}
}

// Insert adds the value to the set. It returns false if the value was
// already present.
func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

func (s *Set[T]) Values() iter.Seq[T] {
	return maps.Keys(s.values)
}

func (s *Set[T]) Len() int {
	return len(s.values)
}
