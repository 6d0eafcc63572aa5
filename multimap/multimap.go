// Package multimap implements a multi-value map whose value groups live as
// contiguous ranges inside one shared pooled list.
//
// Each key owns a range [first, terminal) of the shared list. The terminal is
// a node holding the zero value that is reserved to mark the end of that
// key's group; new values are inserted right before it, so the group keeps
// insertion order and the terminal identity never changes while the group
// lives. Only the order inside a group is meaningful: groups of different
// keys are interleaved in the backing list in no defined order.
//
// A MultiMap is not safe for concurrent use.
package multimap

import (
	"iter"
	"maps"

	"github.com/IvanBrykalov/pooledlist/list"
	"github.com/IvanBrykalov/pooledlist/log"
)

// MultiMap maps keys to groups of values.
type MultiMap[K comparable, V comparable] struct {
	list   *list.List[V]
	ranges map[K]list.Range[V]
}

// New creates an empty multimap backed by a list with default options.
func New[K comparable, V comparable]() *MultiMap[K, V] {
	return NewWithOptions[K, V](list.Options{})
}

// NewWithOptions creates an empty multimap whose shared list is configured by
// opt. Every group costs one extra node (its terminal), which Prealloc should
// account for.
func NewWithOptions[K comparable, V comparable](opt list.Options) *MultiMap[K, V] {
	return &MultiMap[K, V]{
		list:   list.NewWithOptions[V](opt),
		ranges: make(map[K]list.Range[V]),
	}
}

// Len returns the number of keys.
func (m *MultiMap[K, V]) Len() int { return len(m.ranges) }

// Stats returns the counters of the shared list and its pool.
func (m *MultiMap[K, V]) Stats() list.Stats { return m.list.Stats() }

// CachedNodeCount returns the number of retired nodes in the shared pool.
func (m *MultiMap[K, V]) CachedNodeCount() int { return m.list.CachedNodeCount() }

// ClearCachedNodes drops the shared list's pooled nodes.
func (m *MultiMap[K, V]) ClearCachedNodes() { m.list.ClearCachedNodes() }

// Get returns the range of key, or the zero (invalid) Range if key is absent.
func (m *MultiMap[K, V]) Get(key K) list.Range[V] {
	return m.ranges[key]
}

// TryGet returns the range of key and whether key is present.
func (m *MultiMap[K, V]) TryGet(key K) (list.Range[V], bool) {
	r, ok := m.ranges[key]
	return r, ok
}

// Contains reports whether key has at least one value.
func (m *MultiMap[K, V]) Contains(key K) bool {
	_, ok := m.ranges[key]
	return ok
}

// ContainsValue reports whether value is in key's group.
func (m *MultiMap[K, V]) ContainsValue(key K, value V) bool {
	r, ok := m.ranges[key]
	return ok && r.Contains(value)
}

// Add appends value to key's group, creating the group on first use.
func (m *MultiMap[K, V]) Add(key K, value V) {
	if r, ok := m.ranges[key]; ok {
		if _, err := m.list.AddBefore(r.Terminal(), value); err != nil {
			panic(corrupted("add", key, err))
		}
		return
	}

	var zero V
	first := m.list.AddLast(value)
	terminal := m.list.AddLast(zero)
	r, err := list.NewRange(first, terminal)
	if err != nil {
		panic(corrupted("add", key, err))
	}
	m.ranges[key] = r
}

// Remove removes the first occurrence of value from key's group and reports
// whether a value was removed. Removing the last value of a group drops the
// key and retires its terminal node.
func (m *MultiMap[K, V]) Remove(key K, value V) bool {
	r, ok := m.ranges[key]
	if !ok {
		return false
	}

	for n := r.First(); n != nil && n != r.Terminal(); n = n.Next() {
		if n.Value() != value {
			continue
		}

		if n == r.First() {
			next := n.Next()
			if next == r.Terminal() {
				// Last value of the group: tear the whole group down.
				m.removeNode(key, next)
				delete(m.ranges, key)
			} else {
				// Re-anchor before n is released, while next is still live.
				nr, err := list.NewRange(next, r.Terminal())
				if err != nil {
					panic(corrupted("remove", key, err))
				}
				m.ranges[key] = nr
			}
		}
		m.removeNode(key, n)
		return true
	}
	return false
}

// RemoveAll removes key and its whole group and reports whether key was
// present.
func (m *MultiMap[K, V]) RemoveAll(key K) bool {
	r, ok := m.ranges[key]
	if !ok {
		return false
	}
	delete(m.ranges, key)

	terminal := r.Terminal()
	for n := r.First(); n != nil; {
		var next *list.Node[V]
		if n != terminal {
			next = n.Next()
		}
		m.removeNode(key, n)
		n = next
	}
	return true
}

// Clear removes every key and retires every node to the shared pool.
func (m *MultiMap[K, V]) Clear() {
	clear(m.ranges)
	m.list.Clear()
}

// All returns an iterator over (key, range) pairs in unspecified order.
func (m *MultiMap[K, V]) All() iter.Seq2[K, list.Range[V]] {
	return maps.All(m.ranges)
}

// Keys returns an iterator over the keys in unspecified order.
func (m *MultiMap[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.ranges)
}

func (m *MultiMap[K, V]) removeNode(key K, n *list.Node[V]) {
	if err := m.list.RemoveNode(n); err != nil {
		panic(corrupted("remove", key, err))
	}
}

// corrupted reports a group whose recorded boundaries no longer match the
// shared list. Only reachable through a bug in this package.
func corrupted(op string, key any, err error) error {
	return log.Criticalf("multimap: %s %v: corrupted group: %w", op, key, err)
}
