package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type linearSet[V any] struct {
	entries []V
}

// NewLinearSet returns a slice backed set comparing elements with Equals.
func NewLinearSet[V any]() Set[V] {
	return newLinearSet[V](0)
}

func newLinearSet[V any](capacity int) *linearSet[V] {
	return &linearSet[V]{
		entries: make([]V, 0, capacity),
	}
}

func (s *linearSet[V]) indexOf(v V) int {
	return slices.IndexFunc(s.entries, func(e V) bool {
		return Equals(e, v)
	})
}

func (s *linearSet[V]) Contains(v V) bool {
	return s.indexOf(v) >= 0
}

func (s *linearSet[V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries = append(s.entries, v)
	return nil
}

func (s *linearSet[V]) Remove(v V) error {
	i := s.indexOf(v)
	if i < 0 {
		return ErrValueNotExisted
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

func (s *linearSet[V]) Size() int {
	return len(s.entries)
}

func (s *linearSet[V]) Entries() []V {
	arr := make([]V, len(s.entries))
	copy(arr, s.entries)
	return arr
}

func (s linearSet[V]) String() string {
	return fmt.Sprint(s.entries)
}
