// Package linkedhashmap implements a separate-chaining hash map that keeps
// its elements in insertion-relative order, most recent insert first.
//
// Two structures cooperate: a doubly-linked record list owning every (key,
// value) pair, and a bucket table of power-of-two size whose chains hold
// handles (list elements) into the record list. A handle stays valid, and
// keeps denoting the same record, across every operation except removal of
// that record; growing the table only recomputes bucket placement.
//
// Elements are ordered by insertion into the map, newest first.
// Structure is not thread safe.
//
// Reference: https://en.wikipedia.org/wiki/Hash_table#Separate_chaining
package linkedhashmap

import (
	"errors"
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"mlib.com/containers/list"
	"mlib.com/containers/maps"
)

// Assert Map implementation
var _ maps.OrderedMap[string, int] = (*Map[string, int])(nil)

// ErrKeyNotFound is returned by At for a key the map does not hold.
var ErrKeyNotFound = errors.New("linkedhashmap: key not found")

const (
	// loadFactor is the growth threshold: the table doubles as soon as
	// size*loadFactor would reach the table size, keeping chains at an
	// expected length below 1/loadFactor.
	loadFactor = 2

	initialTableSize = 2
)

// Pair is a single key/value association held by the map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Hasher maps a key to an unsigned integer. Implementations must be stable
// for equal keys: a == b implies Hasher(a) == Hasher(b). The map derives key
// equality from ==, so any hasher consistent with == is usable.
type Hasher[K comparable] func(key K) uint64

// DefaultHasher returns a Hasher for any comparable key type, backed by
// hash/maphash with a fresh random seed. Two maps created independently hash
// the same keys differently; a copied map shares its source's hasher.
func DefaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Map holds the records in a doubly-linked list and indexes them through
// chains of list-element handles. Each live record has exactly one handle in
// exactly one chain, at hash(key) & (tableSize-1).
type Map[K comparable, V any] struct {
	size      int
	tableSize uint64
	buckets   [][]*list.Element[Pair[K, V]]
	records   *list.List[Pair[K, V]]
	hasher    Hasher[K]
}

// New instantiates an empty map using the default hasher.
func New[K comparable, V any]() *Map[K, V] {
	return NewWith[K, V](nil)
}

// NewWith instantiates an empty map using the given hasher.
// A nil hasher selects the default one.
func NewWith[K comparable, V any](hasher Hasher[K]) *Map[K, V] {
	if hasher == nil {
		hasher = DefaultHasher[K]()
	}
	return &Map[K, V]{
		tableSize: initialTableSize,
		buckets:   make([][]*list.Element[Pair[K, V]], initialTableSize),
		records:   list.New[Pair[K, V]](),
		hasher:    hasher,
	}
}

// NewFromPairs instantiates a map and puts the given pairs in order.
// For duplicate keys the first occurrence wins.
func NewFromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	return NewFromPairsWith[K, V](nil, pairs...)
}

// NewFromPairsWith is NewFromPairs with an explicit hasher.
func NewFromPairsWith[K comparable, V any](hasher Hasher[K], pairs ...Pair[K, V]) *Map[K, V] {
	m := NewWith[K, V](hasher)
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

// NewFromSeq instantiates a map and puts every pair produced by seq, in
// sequence order. For duplicate keys the first occurrence wins.
func NewFromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Put(k, v)
	}
	return m
}

// locate scans the chain owning key and returns the bucket index, the
// handle's position within the chain, and the handle itself. Absent keys
// report position -1 and a nil handle.
func (m *Map[K, V]) locate(key K) (idx uint64, pos int, elem *list.Element[Pair[K, V]]) {
	idx = m.hasher(key) & (m.tableSize - 1)
	for i, e := range m.buckets[idx] {
		if e.Value.Key == key {
			return idx, i, e
		}
	}
	return idx, -1, nil
}

// grow doubles the table and rebuilds every chain by rescanning the record
// list in its current order. Record identity and order are untouched; only
// bucket placement changes.
func (m *Map[K, V]) grow() {
	m.tableSize <<= 1
	m.buckets = make([][]*list.Element[Pair[K, V]], m.tableSize)
	for e := m.records.Front(); e != nil; e = e.Next() {
		idx := m.hasher(e.Value.Key) & (m.tableSize - 1)
		m.buckets[idx] = append(m.buckets[idx], e)
	}
}

// Put inserts the key/value pair into the map. If the key is already present
// Put is a no-op: the stored value is not overwritten and the table does not
// grow. A new record is prepended, becoming the first element in iteration
// order.
func (m *Map[K, V]) Put(key K, value V) {
	if _, pos, _ := m.locate(key); pos >= 0 {
		return
	}
	if m.size*loadFactor >= int(m.tableSize) {
		m.grow()
	}
	e := m.records.PushFront(Pair[K, V]{Key: key, Value: value})
	idx := m.hasher(key) & (m.tableSize - 1)
	m.buckets[idx] = append(m.buckets[idx], e)
	m.size++
}

// Get searches the element in the map by key and returns its value or the
// zero value if key is not found in map. The second return parameter is true
// if the key was found, otherwise false.
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	if _, _, e := m.locate(key); e != nil {
		return e.Value.Value, true
	}
	return value, false
}

// At returns the value stored under key, or ErrKeyNotFound if the key is
// absent. It is the only fallible operation on the map and has no side
// effects on failure.
func (m *Map[K, V]) At(key K) (V, error) {
	if _, _, e := m.locate(key); e != nil {
		return e.Value.Value, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Ref returns a pointer to the value stored under key, inserting a zero
// value first if the key is absent. The pointer stays valid until that key
// is removed or the map is cleared; growing the table does not move records.
func (m *Map[K, V]) Ref(key K) *V {
	if _, _, e := m.locate(key); e != nil {
		return &e.Value.Value
	}
	var zero V
	m.Put(key, zero)
	_, _, e := m.locate(key)
	return &e.Value.Value
}

// Remove removes the element from the map by key. Removing an absent key is
// a no-op. The table never shrinks.
func (m *Map[K, V]) Remove(key K) {
	idx, pos, e := m.locate(key)
	if e == nil {
		return
	}
	m.buckets[idx] = append(m.buckets[idx][:pos], m.buckets[idx][pos+1:]...)
	m.records.Remove(e)
	m.size--
}

// Find returns the handle of the record stored under key, or nil if the key
// is absent. The handle doubles as a position in iteration order: follow
// Next/Prev to walk neighbouring records.
func (m *Map[K, V]) Find(key K) *list.Element[Pair[K, V]] {
	_, _, e := m.locate(key)
	return e
}

// Contains checks if keys (one or more) are present in the map.
// All keys have to be present for the method to return true.
// Returns true if no arguments are passed at all.
func (m *Map[K, V]) Contains(keys ...K) bool {
	for _, key := range keys {
		if _, _, e := m.locate(key); e == nil {
			return false
		}
	}
	return true
}

// Front returns the handle of the most recently inserted record, or nil if
// the map is empty.
func (m *Map[K, V]) Front() *list.Element[Pair[K, V]] {
	return m.records.Front()
}

// Back returns the handle of the oldest record, or nil if the map is empty.
func (m *Map[K, V]) Back() *list.Element[Pair[K, V]] {
	return m.records.Back()
}

// Pairs returns a lazy, restartable sequence over the map's elements in
// iteration order, newest insert first.
func (m *Map[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.records.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.Key, e.Value.Value) {
				return
			}
		}
	}
}

// Keys returns all keys in iteration order (newest insert first).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for e := m.records.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.Key)
	}
	return keys
}

// Values returns all values in iteration order (newest insert first).
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for e := m.records.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.Value)
	}
	return values
}

// Empty returns true if map does not contain any elements
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Size returns number of elements in the map.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Hasher returns the hash capability the map was configured with.
func (m *Map[K, V]) Hasher() Hasher[K] {
	return m.hasher
}

// Clear removes all elements from the map and resets the table to its
// initial size, as on a freshly constructed map. Clearing a zero-value Map
// initializes it, so deserialization into a declared Map works.
func (m *Map[K, V]) Clear() {
	m.size = 0
	m.tableSize = initialTableSize
	m.buckets = make([][]*list.Element[Pair[K, V]], initialTableSize)
	if m.hasher == nil {
		m.hasher = DefaultHasher[K]()
	}
	if m.records == nil {
		m.records = list.New[Pair[K, V]]()
	} else {
		m.records.Init()
	}
}

// Copy returns a deep copy of the map: a fresh table sharing the source's
// hasher, populated so that iterating the copy yields the same sequence as
// iterating the source. Bucket layout is rebuilt from scratch, not copied.
func (m *Map[K, V]) Copy() *Map[K, V] {
	cp := NewWith[K, V](m.hasher)
	for e := m.records.Back(); e != nil; e = e.Prev() {
		cp.Put(e.Value.Key, e.Value.Value)
	}
	return cp
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	str := "LinkedHashMap\n"
	items := []string{}
	for e := m.records.Front(); e != nil; e = e.Next() {
		items = append(items, fmt.Sprintf("%v:%v", e.Value.Key, e.Value.Value))
	}
	str += strings.Join(items, ", ")
	return str
}
