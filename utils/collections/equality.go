package collections

import "reflect"

// Equaler lets a type supply its own equality to Equals. The method is looked
// up against the static type parameter: in a Map[any, V] a key is only
// consulted if it has Equals(any) bool, an Equals(caseless) bool style method
// is ignored and == applies instead.
type Equaler[T any] interface {
	Equals(other T) bool
}

// Equals compares two keys or two values. Two nils are equal, a nil is never
// equal to a non-nil.
func Equals[T any](a, b T) bool {
	if isNil(a) {
		return isNil(b)
	}
	if isNil(b) {
		return false
	}
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equals(b)
	}
	ia, ib := any(a), any(b)
	if reflect.TypeOf(ia).Comparable() && reflect.TypeOf(ib).Comparable() {
		if eq, ok := compare(ia, ib); ok {
			return eq
		}
	}
	return reflect.DeepEqual(ia, ib)
}

// compare reports ok=false when == panics, which happens for a comparable
// type whose interface field holds a slice, map or func.
func compare(a, b any) (eq bool, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
