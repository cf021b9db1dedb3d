package collections

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// linearMap keeps its entries in a slice in insertion order. Every lookup is
// a linear scan, so Get, Put and Remove are all O(n).
type linearMap[K any, V any] struct {
	list []*Entry[K, V]
}

func NewLinearMap[K any, V any]() Map[K, V] {
	return NewLinearMapWithCapacity[K, V](0)
}

func NewLinearMapWithCapacity[K any, V any](capacity int) Map[K, V] {
	return &linearMap[K, V]{
		list: make([]*Entry[K, V], 0, capacity),
	}
}

// findEntry returns the position and entry holding target, or -1 and nil.
func (m *linearMap[K, V]) findEntry(target K) (int, *Entry[K, V]) {
	i := slices.IndexFunc(m.list, func(e *Entry[K, V]) bool {
		return Equals(e.key, target)
	})
	if i < 0 {
		return -1, nil
	}
	return i, m.list[i]
}

// entries exposes the live backing slice. Callers must not hold on to it
// across mutations.
func (m *linearMap[K, V]) entries() []*Entry[K, V] {
	return m.list
}

func (m *linearMap[K, V]) Clear() {
	m.list = make([]*Entry[K, V], 0)
}

func (m *linearMap[K, V]) ContainsKey(k K) bool {
	_, e := m.findEntry(k)
	return e != nil
}

func (m *linearMap[K, V]) ContainsValue(v V) bool {
	for _, e := range m.entries() {
		if Equals(v, e.value) {
			return true
		}
	}
	return false
}

func (m *linearMap[K, V]) Get(k K) (v V, ok bool) {
	_, e := m.findEntry(k)
	if e == nil {
		return v, false
	}
	return e.value, true
}

func (m *linearMap[K, V]) IsEmpty() bool {
	return len(m.list) == 0
}

func (m *linearMap[K, V]) KeySet() Set[K] {
	set := newLinearSet[K](m.Size())
	for _, e := range m.entries() {
		// keys are unique, Add never reports ErrValueExisted here
		_ = set.Add(e.key)
	}
	return set
}

func (m *linearMap[K, V]) Values() Set[V] {
	set := newLinearSet[V](m.Size())
	for _, e := range m.entries() {
		_ = set.Add(e.value)
	}
	return set
}

func (m *linearMap[K, V]) Put(k K, v V) (old V, ok bool) {
	if _, e := m.findEntry(k); e != nil {
		return e.SetValue(v), true
	}
	m.list = append(m.list, newEntry(k, v))
	return old, false
}

func (m *linearMap[K, V]) PutAll(other Map[K, V]) {
	other.ForEach(func(k K, v V) bool {
		m.Put(k, v)
		return true
	})
}

func (m *linearMap[K, V]) Remove(k K) (old V, ok bool) {
	i, e := m.findEntry(k)
	if e == nil {
		return old, false
	}
	last := len(m.list) - 1
	copy(m.list[i:], m.list[i+1:])
	m.list[last] = nil
	m.list = m.list[:last]
	return e.value, true
}

func (m *linearMap[K, V]) Size() int {
	return len(m.list)
}

func (m *linearMap[K, V]) EntrySet() (Set[*Entry[K, V]], error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "linear map entry set")
}

func (m *linearMap[K, V]) ForEach(fn func(k K, v V) bool) {
	for _, e := range m.entries() {
		if !fn(e.key, e.value) {
			return
		}
	}
}

func (m linearMap[K, V]) String() string {
	parts := make([]string, 0, len(m.list))
	for _, e := range m.list {
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
