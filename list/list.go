package list

import (
	"fmt"
	"iter"

	"github.com/IvanBrykalov/pooledlist/log"
	"github.com/IvanBrykalov/pooledlist/policy/fifo"
)

// List is a doubly linked list whose nodes are recycled through an embedded
// pool instead of being left to the GC. Every node that leaves the active
// sequence is cleared and retired; every node that enters it is taken from the
// pool first.
//
// A List is not safe for concurrent use. The zero List is not ready for use;
// create lists with New or NewWithOptions.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	len  int

	pool pool[T]
}

// Stats is a point-in-time snapshot of a list and its pool.
type Stats struct {
	Active    int    // nodes in the active sequence
	Cached    int    // retired nodes waiting for reuse
	Allocated uint64 // nodes ever allocated (including warm-up slabs)
	Reused    uint64 // acquisitions served from the pool
	Dropped   uint64 // nodes discarded by the policy or ClearCachedNodes
}

// New creates an empty list with a FIFO, unbounded pool.
func New[T comparable]() *List[T] {
	return NewWithOptions[T](Options{})
}

// NewWithOptions creates an empty list configured by opt.
func NewWithOptions[T comparable](opt Options) *List[T] {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = fifo.New()
	}

	l := &List[T]{
		pool: pool[T]{policy: opt.Policy, metrics: opt.Metrics},
	}
	if opt.Prealloc > 0 {
		l.Grow(opt.Prealloc)
	}
	return l
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.len }

// CachedNodeCount returns the number of retired nodes held by the pool.
func (l *List[T]) CachedNodeCount() int { return l.pool.len }

// First returns the first node of the list, or nil if the list is empty.
func (l *List[T]) First() *Node[T] { return l.head }

// Last returns the last node of the list, or nil if the list is empty.
func (l *List[T]) Last() *Node[T] { return l.tail }

// Stats returns a snapshot of the list and pool counters.
func (l *List[T]) Stats() Stats {
	return Stats{
		Active:    l.len,
		Cached:    l.pool.len,
		Allocated: l.pool.allocated,
		Reused:    l.pool.reused,
		Dropped:   l.pool.dropped,
	}
}

// Add appends v at the end of the list.
func (l *List[T]) Add(v T) { l.AddLast(v) }

// AddFirst inserts v at the front of the list and returns its node.
func (l *List[T]) AddFirst(v T) *Node[T] {
	return l.link(l.pool.acquire(v), nil, l.head)
}

// AddLast inserts v at the end of the list and returns its node.
func (l *List[T]) AddLast(v T) *Node[T] {
	return l.link(l.pool.acquire(v), l.tail, nil)
}

// AddBefore inserts v immediately before anchor and returns its node.
// anchor must be an active node of l.
func (l *List[T]) AddBefore(anchor *Node[T], v T) (*Node[T], error) {
	if !l.owns(anchor) {
		return nil, fmt.Errorf("list: add before: %w", ErrForeignNode)
	}
	return l.link(l.pool.acquire(v), anchor.prev, anchor), nil
}

// AddAfter inserts v immediately after anchor and returns its node.
// anchor must be an active node of l.
func (l *List[T]) AddAfter(anchor *Node[T], v T) (*Node[T], error) {
	if !l.owns(anchor) {
		return nil, fmt.Errorf("list: add after: %w", ErrForeignNode)
	}
	return l.link(l.pool.acquire(v), anchor, anchor.next), nil
}

// Find returns the first node holding v, or nil.
func (l *List[T]) Find(v T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.val == v {
			return n
		}
	}
	return nil
}

// FindLast returns the last node holding v, or nil.
func (l *List[T]) FindLast(v T) *Node[T] {
	for n := l.tail; n != nil; n = n.prev {
		if n.val == v {
			return n
		}
	}
	return nil
}

// Contains reports whether v is in the list.
func (l *List[T]) Contains(v T) bool { return l.Find(v) != nil }

// Remove removes the first node holding v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	n := l.Find(v)
	if n == nil {
		return false
	}
	l.unlink(n)
	return true
}

// RemoveNode removes n from the list and retires it to the pool. n must not
// be used afterwards.
func (l *List[T]) RemoveNode(n *Node[T]) error {
	if !l.owns(n) {
		return fmt.Errorf("list: remove node: %w", ErrForeignNode)
	}
	l.unlink(n)
	return nil
}

// RemoveFirst removes the first node of the list.
func (l *List[T]) RemoveFirst() error {
	if l.head == nil {
		return fmt.Errorf("list: remove first: %w", ErrEmpty)
	}
	l.unlink(l.head)
	return nil
}

// RemoveLast removes the last node of the list.
func (l *List[T]) RemoveLast() error {
	if l.tail == nil {
		return fmt.Errorf("list: remove last: %w", ErrEmpty)
	}
	l.unlink(l.tail)
	return nil
}

// Clear retires every node of the list to the pool. The pool itself is kept;
// see ClearCachedNodes.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.pool.release(n)
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
	l.pool.metrics.Size(l.len, l.pool.len)
}

// ClearCachedNodes drops every pooled node, shrinking the list's footprint to
// its active sequence.
func (l *List[T]) ClearCachedNodes() {
	if n := l.pool.clear(); n > 0 {
		log.Debug("list: dropped %d cached nodes", n)
	}
	l.pool.metrics.Size(l.len, l.pool.len)
}

// Grow ensures the pool holds at least n retired nodes, allocating the
// shortfall as one slab. The reuse policy may keep fewer.
func (l *List[T]) Grow(n int) {
	if k := l.pool.grow(n); k > 0 {
		log.Debug("list: pool grown by %d nodes", k)
	}
	l.pool.metrics.Size(l.len, l.pool.len)
}

// AppendTo appends the list's values to dst in order and returns the
// extended slice.
func (l *List[T]) AppendTo(dst []T) []T {
	for n := l.head; n != nil; n = n.next {
		dst = append(dst, n.val)
	}
	return dst
}

// All returns an iterator over the values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.Next() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.Prev() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// -------------------- internals --------------------

func (l *List[T]) owns(n *Node[T]) bool { return n != nil && n.list == l }

// link places n between prev and next (either may be nil at the list ends).
func (l *List[T]) link(n, prev, next *Node[T]) *Node[T] {
	n.prev, n.next, n.list = prev, next, l
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	if next == nil {
		l.tail = n
	} else {
		next.prev = n
	}
	l.len++
	l.pool.metrics.Size(l.len, l.pool.len)
	return n
}

// unlink detaches n from the active sequence and retires it.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.len--
	l.pool.release(n)
	l.pool.metrics.Size(l.len, l.pool.len)
}
