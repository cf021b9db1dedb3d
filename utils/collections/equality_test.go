package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	one, other := 1, 1
	require.True(t, Equals[*int](nil, nil))
	require.False(t, Equals[*int](nil, &one))
	require.False(t, Equals[*int](&one, nil))
	require.True(t, Equals(&one, &one))
	require.False(t, Equals(&one, &other))
	require.True(t, Equals("a", "a"))
	require.False(t, Equals("a", "b"))
	require.True(t, Equals([]int{1, 2}, []int{1, 2}))
	require.False(t, Equals([]int{1, 2}, []int{1}))
	require.True(t, Equals(map[string]int{"a": 1}, map[string]int{"a": 1}))
	require.True(t, Equals[any](nil, (*int)(nil)))
	require.False(t, Equals[any](1, "1"))
	require.True(t, Equals[caseless]("ABC", "abc"))
}

type boxed struct {
	V any
}

func TestEqualsInterfaceFieldHoldingSlice(t *testing.T) {
	require.NotPanics(t, func() {
		require.True(t, Equals(boxed{V: []int{1}}, boxed{V: []int{1}}))
		require.False(t, Equals(boxed{V: []int{1}}, boxed{V: []int{2}}))
		require.True(t, Equals[any](boxed{V: map[string]int{"a": 1}}, boxed{V: map[string]int{"a": 1}}))
		require.False(t, Equals[any](boxed{V: []int{1}}, boxed{V: 1}))
	})
	require.True(t, Equals(boxed{V: 1}, boxed{V: 1}))
}

func TestEqualsEqualerUnderAny(t *testing.T) {
	require.True(t, Equals[caseless]("Key", "KEY"))
	require.False(t, Equals[any](caseless("Key"), caseless("KEY")))
	require.True(t, Equals[any](caseless("Key"), caseless("Key")))
}
