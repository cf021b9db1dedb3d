package collections

import "fmt"

type Entry[K any, V any] struct {
	key   K
	value V
}

func newEntry[K any, V any](k K, v V) *Entry[K, V] {
	return &Entry[K, V]{
		key:   k,
		value: v,
	}
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value and returns the old one.
func (e *Entry[K, V]) SetValue(v V) V {
	old := e.value
	e.value = v
	return old
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}
