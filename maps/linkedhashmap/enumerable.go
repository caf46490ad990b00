package linkedhashmap

import "mlib.com/containers"

// Assert Enumerable implementation
var _ containers.EnumerableWithKey[string, int] = (*Map[string, int])(nil)

// Each calls the given function once for each element, passing that element's key and value.
func (m *Map[K, V]) Each(f func(key K, value V)) {
	for e := m.records.Front(); e != nil; e = e.Next() {
		f(e.Value.Key, e.Value.Value)
	}
}

// Any passes each element of the container to the given function and
// returns true if the function ever returns true for any element.
func (m *Map[K, V]) Any(f func(key K, value V) bool) bool {
	for e := m.records.Front(); e != nil; e = e.Next() {
		if f(e.Value.Key, e.Value.Value) {
			return true
		}
	}
	return false
}

// All passes each element of the container to the given function and
// returns true if the function returns true for all elements.
func (m *Map[K, V]) All(f func(key K, value V) bool) bool {
	for e := m.records.Front(); e != nil; e = e.Next() {
		if !f(e.Value.Key, e.Value.Value) {
			return false
		}
	}
	return true
}

// FindMatch passes each element of the container to the given function and returns
// the first (key,value) for which the function is true or zero values otherwise
// if no element matches the criteria.
func (m *Map[K, V]) FindMatch(f func(key K, value V) bool) (key K, value V) {
	for e := m.records.Front(); e != nil; e = e.Next() {
		if f(e.Value.Key, e.Value.Value) {
			return e.Value.Key, e.Value.Value
		}
	}
	return key, value
}
