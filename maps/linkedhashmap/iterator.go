package linkedhashmap

import (
	"mlib.com/containers"
	"mlib.com/containers/list"
)

// Assert Iterator implementation
var _ containers.IteratorWithKey[string, int] = (*Iterator[string, int])(nil)

// Iterator holding the iterator's state
type Iterator[K comparable, V any] struct {
	m       *Map[K, V]
	current *list.Element[Pair[K, V]]
	started bool
}

// Iterator returns a stateful iterator over the map's elements in iteration
// order, newest insert first.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Next moves the iterator to the next element and returns true if there was a next element in the container.
// If Next() returns true, then next element's key and value can be retrieved by Key() and Value().
// If Next() was called for the first time, then it will point the iterator to the first element if it exists.
// Modifies the state of the iterator.
func (it *Iterator[K, V]) Next() bool {
	if !it.started {
		it.started = true
		it.current = it.m.Front()
	} else if it.current != nil {
		it.current = it.current.Next()
	}
	return it.current != nil
}

// Value returns the current element's value.
// Does not modify the state of the iterator.
func (it *Iterator[K, V]) Value() V {
	return it.current.Value.Value
}

// Key returns the current element's key.
// Does not modify the state of the iterator.
func (it *Iterator[K, V]) Key() K {
	return it.current.Value.Key
}

// Begin resets the iterator to its initial state (one-before-first)
// Call Next() to fetch the first element if any.
func (it *Iterator[K, V]) Begin() {
	it.started = false
	it.current = nil
}

// First moves the iterator to the first element and returns true if there was a first element in the container.
// If First() returns true, then first element's key and value can be retrieved by Key() and Value().
// Modifies the state of the iterator.
func (it *Iterator[K, V]) First() bool {
	it.Begin()
	return it.Next()
}
