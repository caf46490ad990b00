// Package lru implements a non-thread safe fixed size LRU cache on top of
// the containers list and chained hash map packages: recency lives in a
// linked list, the key index in a linkedhashmap.
package lru

import (
	"errors"

	"mlib.com/containers/list"
	"mlib.com/containers/maps/linkedhashmap"
)

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

type entry[K comparable, V any] struct {
	key K
	val V
}

// LRU implements a non-thread safe fixed size LRU cache
type LRU[K comparable, V any] struct {
	size      int
	evictList *list.List[*entry[K, V]]
	items     *linkedhashmap.Map[K, *list.Element[*entry[K, V]]]
	onEvict   EvictCallback[K, V]
}

// NewLRU constructs an LRU of the given size
func NewLRU[K comparable, V any](size int, onEvict EvictCallback[K, V]) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, errors.New("must provide a positive size")
	}

	c := &LRU[K, V]{
		size:      size,
		evictList: list.New[*entry[K, V]](),
		items:     linkedhashmap.New[K, *list.Element[*entry[K, V]]](),
		onEvict:   onEvict,
	}
	return c, nil
}

// Purge is used to completely clear the cache.
func (c *LRU[K, V]) Purge() {
	for ent := c.evictList.Back(); ent != nil; ent = ent.Prev() {
		if c.onEvict != nil {
			c.onEvict(ent.Value.key, ent.Value.val)
		}
	}
	c.items.Clear()
	c.evictList.Init()
}

// Add adds a value to the cache.  Returns true if an eviction occurred.
func (c *LRU[K, V]) Add(key K, value V) (evicted bool) {
	// Check for existing item
	if ent, ok := c.items.Get(key); ok {
		c.evictList.MoveToFront(ent)
		if c.onEvict != nil {
			c.onEvict(key, ent.Value.val)
		}
		ent.Value.val = value
		return false
	}

	// Add new item
	ent := c.evictList.PushFront(&entry[K, V]{key: key, val: value})
	c.items.Put(key, ent)

	evict := c.evictList.Len() > c.size
	// Verify size not exceeded
	if evict {
		c.removeOldest()
	}
	return evict
}

// Get looks up a key's value from the cache.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	if ent, ok := c.items.Get(key); ok {
		c.evictList.MoveToFront(ent)
		return ent.Value.val, true
	}
	return
}

// Contains checks if a key is in the cache, without updating the recent-ness
// or deleting it for being stale.
func (c *LRU[K, V]) Contains(key K) (ok bool) {
	return c.items.Contains(key)
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *LRU[K, V]) Peek(key K) (value V, ok bool) {
	var ent *list.Element[*entry[K, V]]
	if ent, ok = c.items.Get(key); ok {
		return ent.Value.val, true
	}
	return
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *LRU[K, V]) Remove(key K) (present bool) {
	if ent, ok := c.items.Get(key); ok {
		c.removeElement(ent)
		return true
	}
	return false
}

// RemoveOldest removes the oldest item from the cache.
func (c *LRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if ent := c.evictList.Back(); ent != nil {
		c.removeElement(ent)
		return ent.Value.key, ent.Value.val, true
	}
	return
}

// GetOldest returns the oldest entry
func (c *LRU[K, V]) GetOldest() (key K, value V, ok bool) {
	if ent := c.evictList.Back(); ent != nil {
		return ent.Value.key, ent.Value.val, true
	}
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, c.evictList.Len())
	i := 0
	for ent := c.evictList.Back(); ent != nil; ent = ent.Prev() {
		keys[i] = ent.Value.key
		i++
	}
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *LRU[K, V]) Values() []V {
	values := make([]V, c.evictList.Len())
	i := 0
	for ent := c.evictList.Back(); ent != nil; ent = ent.Prev() {
		values[i] = ent.Value.val
		i++
	}
	return values
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	return c.evictList.Len()
}

// Resize changes the cache size.
func (c *LRU[K, V]) Resize(size int) (evicted int) {
	diff := c.Len() - size
	if diff < 0 {
		diff = 0
	}
	for i := 0; i < diff; i++ {
		c.removeOldest()
	}
	c.size = size
	return diff
}

// removeOldest removes the oldest item from the cache.
func (c *LRU[K, V]) removeOldest() {
	if ent := c.evictList.Back(); ent != nil {
		c.removeElement(ent)
	}
}

// removeElement is used to remove a given list element from the cache
func (c *LRU[K, V]) removeElement(e *list.Element[*entry[K, V]]) {
	c.evictList.Remove(e)
	c.items.Remove(e.Value.key)
	if c.onEvict != nil {
		c.onEvict(e.Value.key, e.Value.val)
	}
}
