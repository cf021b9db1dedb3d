package collections

// Map is an associative container. Lookups on a missing key return the zero
// value and false rather than an error.
type Map[K any, V any] interface {
	Clear()
	ContainsKey(k K) bool
	ContainsValue(v V) bool
	Get(k K) (V, bool)
	IsEmpty() bool
	KeySet() Set[K]
	// Values collapses equal values, so two keys mapped to the same value
	// contribute a single element.
	Values() Set[V]
	// Put returns the previous value and true if k was already mapped.
	Put(k K, v V) (V, bool)
	PutAll(other Map[K, V])
	Remove(k K) (V, bool)
	Size() int
	// EntrySet always fails with ErrUnsupportedOperation.
	EntrySet() (Set[*Entry[K, V]], error)
	// ForEach stops as soon as fn returns false.
	ForEach(fn func(k K, v V) bool)
}
