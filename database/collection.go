package database

import (
	"sync"
)

// record is a stored entity that can hand out copies sharing no memory with itself
type record[T any] interface {
	Clone() T
}

// collection is a read-only, insertion-ordered set of records guarded by its
// own lock. Records are set once by newCollection and never change; every
// read returns deep copies.
type collection[T record[T]] struct {
	mu      sync.RWMutex
	records []T
	key     func(T) string
}

func newCollection[T record[T]](records []T, key func(T) string) *collection[T] {
	return &collection[T]{
		records: cloneAll(records),
		key:     key,
	}
}

func cloneAll[T record[T]](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out
}

// all returns every record in insertion order
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.records)
}

// find scans linearly and returns a copy of the first record whose key equals k
func (c *collection[T]) find(k string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.records {
		if c.key(r) == k {
			return r.Clone(), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
