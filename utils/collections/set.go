package collections

// Set holds distinct elements. Add reports ErrValueExisted for an element
// already present, Remove reports ErrValueNotExisted for a missing one.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}
