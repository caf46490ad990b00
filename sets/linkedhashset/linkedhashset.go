// Package linkedhashset implements a set backed by the chained hash map,
// inheriting its iteration order: elements come out newest insert first.
//
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Set_%28abstract_data_type%29
package linkedhashset

import (
	"fmt"
	"strings"

	"mlib.com/containers/maps/linkedhashmap"
	"mlib.com/containers/sets"
)

// Assert Set implementation
var _ sets.Set[int] = (*Set[int])(nil)

// Set holds elements in a chained hash map keyed by the element
type Set[T comparable] struct {
	items *linkedhashmap.Map[T, struct{}]
}

// New instantiates a new empty set and adds the passed values, if any, to the set
func New[T comparable](values ...T) *Set[T] {
	return NewWith(nil, values...)
}

// NewWith instantiates a set using the given hasher for its backing map.
// A nil hasher selects the default one.
func NewWith[T comparable](hasher linkedhashmap.Hasher[T], values ...T) *Set[T] {
	set := &Set[T]{items: linkedhashmap.NewWith[T, struct{}](hasher)}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

// Add adds the items (one or more) to the set.
func (set *Set[T]) Add(items ...T) {
	for _, item := range items {
		set.items.Put(item, struct{}{})
	}
}

// Remove removes the items (one or more) from the set.
func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		set.items.Remove(item)
	}
}

// Contains check if items (one or more) are present in the set.
// All items have to be present in the set for the method to return true.
// Returns true if no arguments are passed at all, i.e. set is always superset of empty set.
func (set *Set[T]) Contains(items ...T) bool {
	return set.items.Contains(items...)
}

// Empty returns true if set does not contain any elements.
func (set *Set[T]) Empty() bool {
	return set.items.Empty()
}

// Size returns number of elements within the set.
func (set *Set[T]) Size() int {
	return set.items.Size()
}

// Clear clears all values in the set. Clearing a zero-value Set initializes
// it, so deserialization into a declared Set works.
func (set *Set[T]) Clear() {
	if set.items == nil {
		set.items = linkedhashmap.New[T, struct{}]()
		return
	}
	set.items.Clear()
}

// Values returns all items in the set, newest insert first.
func (set *Set[T]) Values() []T {
	return set.items.Keys()
}

// Each calls the given function once for each element, in set order.
func (set *Set[T]) Each(f func(item T)) {
	set.items.Each(func(key T, _ struct{}) { f(key) })
}

// String returns a string representation of container
func (set *Set[T]) String() string {
	str := "LinkedHashSet\n"
	items := []string{}
	set.Each(func(item T) {
		items = append(items, fmt.Sprintf("%v", item))
	})
	str += strings.Join(items, ", ")
	return str
}

// addReplay adds items oldest first, so that "from"'s set order is kept in
// the prepend-ordered result.
func (set *Set[T]) addReplay(from *Set[T], keep func(item T) bool) {
	for e := from.items.Back(); e != nil; e = e.Prev() {
		if keep(e.Value.Key) {
			set.Add(e.Value.Key)
		}
	}
}

// Intersection returns the intersection between two sets.
// The new set consists of all elements that are both in "set" and "another", in "set"'s order.
// Ref: https://en.wikipedia.org/wiki/Intersection_(set_theory)
func (set *Set[T]) Intersection(another *Set[T]) *Set[T] {
	result := New[T]()
	result.addReplay(set, func(item T) bool { return another.Contains(item) })
	return result
}

// Union returns the union of two sets.
// The new set consists of all elements that are in "set" or "another" (possibly both).
// Ref: https://en.wikipedia.org/wiki/Union_(set_theory)
func (set *Set[T]) Union(another *Set[T]) *Set[T] {
	result := New[T]()
	result.addReplay(set, func(T) bool { return true })
	result.addReplay(another, func(T) bool { return true })
	return result
}

// Difference returns the difference between two sets.
// The new set consists of all elements that are in "set" but not in "another", in "set"'s order.
// Ref: https://proofwiki.org/wiki/Definition:Set_Difference
func (set *Set[T]) Difference(another *Set[T]) *Set[T] {
	result := New[T]()
	result.addReplay(set, func(item T) bool { return !another.Contains(item) })
	return result
}
