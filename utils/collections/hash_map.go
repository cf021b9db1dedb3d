package collections

import (
	"fmt"

	"github.com/pkg/errors"
)

// hashMap satisfies the same contract as linearMap on top of a Go map. Keys
// and values are compared with ==, an Equaler implementation is not
// consulted.
type hashMap[K comparable, V comparable] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V comparable]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *hashMap[K, V]) Clear() {
	m.entries = make(map[K]V)
}

func (m *hashMap[K, V]) ContainsKey(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *hashMap[K, V]) ContainsValue(v V) bool {
	for _, e := range m.entries {
		if e == v {
			return true
		}
	}
	return false
}

func (m *hashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *hashMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *hashMap[K, V]) KeySet() Set[K] {
	set := NewComparableSet[K]()
	for k := range m.entries {
		_ = set.Add(k)
	}
	return set
}

func (m *hashMap[K, V]) Values() Set[V] {
	set := NewComparableSet[V]()
	for _, v := range m.entries {
		_ = set.Add(v)
	}
	return set
}

func (m *hashMap[K, V]) Put(k K, v V) (V, bool) {
	old, ok := m.entries[k]
	m.entries[k] = v
	return old, ok
}

func (m *hashMap[K, V]) PutAll(other Map[K, V]) {
	other.ForEach(func(k K, v V) bool {
		m.entries[k] = v
		return true
	})
}

func (m *hashMap[K, V]) Remove(k K) (V, bool) {
	old, ok := m.entries[k]
	if ok {
		delete(m.entries, k)
	}
	return old, ok
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) EntrySet() (Set[*Entry[K, V]], error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "hash map entry set")
}

func (m *hashMap[K, V]) ForEach(fn func(k K, v V) bool) {
	for k, v := range m.entries {
		if !fn(k, v) {
			return
		}
	}
}

func (m hashMap[K, V]) String() string {
	return fmt.Sprint(m.entries)
}
